package remote

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_remote.go github.com/Acizza/anup/pkg/remote Service
