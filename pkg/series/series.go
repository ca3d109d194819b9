// Package series holds the domain model for tracked series and the pure
// state transitions applied to a watch entry. Persistence and remote
// synchronization live elsewhere; every operation here transforms an
// in-memory value and nothing more.
package series

// Config is the locally chosen identity of a tracked series: where its
// episodes live and how to parse them.
type Config struct {
	ID       int32
	Nickname string
	Path     string
	// Matcher is an optional custom episode pattern overriding the built-in
	// filename formats.
	Matcher *string
	// PlayerArgs are extra arguments passed to the video player for this
	// series only.
	PlayerArgs []string
}

// Info is read-mostly metadata fetched from the remote service.
type Info struct {
	ID             int32
	TitlePreferred string
	TitleRomaji    string
	Episodes       int32
	// EpisodeLengthMins is the average episode duration in minutes.
	EpisodeLengthMins int32
	// Sequel is the id of the series that continues this one, when known.
	Sequel *int32
}

// Series bundles the three rows that describe one tracked series. They share
// an id and are persisted together.
type Series struct {
	Config Config
	Info   Info
	Entry  Entry
}

// NewSeries seeds a fresh series around fetched info.
func NewSeries(config Config, info Info) Series {
	return Series{
		Config: config,
		Info:   info,
		Entry:  Entry{ID: info.ID, Status: StatusPlanToWatch},
	}
}
