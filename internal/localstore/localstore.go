// Package localstore keeps the small amount of durable client state that
// must survive a restart: the bearer credential and the recovery
// identifier of the last active resume.
package localstore

import (
	"context"
	"io"
)

// Fixed slot names.
const (
	KeyAccessToken     = "access_token"
	KeyCurrentResumeID = "currentResumeId"
)

// Store is a string key/value slot store. A missing key reads as "".
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by stores backed by a remote server.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Closer releases the resources held by a store, if any.
func Closer(s Store) io.Closer {
	if c, ok := s.(io.Closer); ok {
		return c
	}
	return nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
