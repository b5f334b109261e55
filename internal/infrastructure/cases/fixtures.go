package cases

import (
	"context"
	"mime"
	"os"
	"path/filepath"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
)

// FixtureDir reads case fixture files relative to a root directory.
type FixtureDir struct {
	root string
}

func NewFixtureDir(root string) *FixtureDir {
	if root == "" {
		root = "."
	}
	return &FixtureDir{root: root}
}

func (d *FixtureDir) Read(_ context.Context, path string) (domain.Fixture, error) {
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(d.root, path)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return domain.Fixture{}, domain.WrapError(domain.ErrFixture, "read fixture file", err)
	}

	return domain.Fixture{
		Name:     filepath.Base(resolved),
		MimeType: mimeTypeFor(resolved),
		Data:     data,
	}, nil
}

func mimeTypeFor(path string) string {
	ext := filepath.Ext(path)
	if ext == ".txt" {
		// fixtures are plain text; skip the charset suffix mime.TypeByExtension adds
		return "text/plain"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
