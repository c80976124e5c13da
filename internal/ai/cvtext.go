package ai

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// TextReader loads the text of a stored CV by its reference.
type TextReader interface {
	ReadCV(ctx context.Context, pathCV string) (string, error)
}

// FileTextReader reads CVs from the local uploads directory. Text extraction
// from richer formats is an external collaborator concern; uploads are stored
// as plain text alongside the original file.
type FileTextReader struct {
	Root string
}

func (r FileTextReader) ReadCV(_ context.Context, pathCV string) (string, error) {
	if pathCV == "" {
		return "", fmt.Errorf("empty CV reference")
	}

	full := pathCV
	if !filepath.IsAbs(full) {
		full = filepath.Join(r.Root, pathCV)
	}

	raw, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("read CV %s: %w", pathCV, err)
	}
	return string(raw), nil
}
