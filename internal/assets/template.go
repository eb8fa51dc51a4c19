package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// TemplateFile is the HTML shell on disk. Every Read hits the filesystem.
type TemplateFile struct {
	path string
}

func NewTemplateFile(path string) (*TemplateFile, error) {
	if path == "" {
		return nil, errors.New("empty template path")
	}
	return &TemplateFile{path: path}, nil
}

func (t *TemplateFile) Path() string {
	return t.path
}

func (t *TemplateFile) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

// Exists reports whether the template is present right now.
func (t *TemplateFile) Exists() bool {
	info, err := os.Stat(t.path)
	return err == nil && info.Mode().IsRegular()
}
