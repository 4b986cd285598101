package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// FileCapturer captures an image that was already rendered to disk.
type FileCapturer struct {
	Path string
}

// Capture reads the file and detects its content type.
func (f FileCapturer) Capture(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", f.Path)
	}
	if len(data) == 0 {
		return nil, errors.Errorf("%s is empty", f.Path)
	}
	return &Snapshot{
		FileName:    filepath.Base(f.Path),
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	}, nil
}
