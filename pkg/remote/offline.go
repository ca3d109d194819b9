package remote

import (
	"context"

	"github.com/Acizza/anup/pkg/series"
)

// Offline is a Service that never connects to the network. Info lookups fail
// with ErrNeedConnection; entry operations succeed without doing anything so
// callers can treat online and offline modes uniformly.
type Offline struct{}

var _ Service = Offline{}

func NewOffline() Offline {
	return Offline{}
}

func (Offline) SearchInfoByName(context.Context, string) ([]series.Info, error) {
	return nil, ErrNeedConnection
}

func (Offline) SearchInfoByID(context.Context, int32) (series.Info, error) {
	return series.Info{}, ErrNeedConnection
}

func (Offline) GetListEntry(context.Context, int32) (*series.Entry, error) {
	return nil, nil
}

func (Offline) UpdateListEntry(context.Context, *series.Entry) error {
	return nil
}

func (Offline) IsOffline() bool {
	return true
}
