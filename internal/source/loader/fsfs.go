package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

func loadFromFS(ctx context.Context, filesystem fs.FS, name string, maxBytes int64) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("source loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("source loader: fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(filesystem, name)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("source loader: %s exceeds %d bytes", name, maxBytes)
	}
	return data, nil
}
