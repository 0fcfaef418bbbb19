package service

import (
	"context"
	"io"
	"time"
)

// StoredObject is one uploaded asset as reported by List.
type StoredObject struct {
	PublicID  string
	CreatedAt time.Time
}

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	// List returns every stored object whose public id starts with prefix.
	List(ctx context.Context, prefix string) ([]StoredObject, error)
	Delete(ctx context.Context, publicID string) error
}
