// Package filestore keeps uploaded product documents on local disk and
// serves them under a public URL prefix.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrForeignReference = errors.New("file reference is outside the store")

// Local implements ports.FileStore. Saved files are reachable as
// <prefix>/<name>, which is the reference stored on products.
type Local struct {
	dir    string
	prefix string
	now    func() time.Time
}

func NewLocal(dir, prefix string) (*Local, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	prefix = "/" + strings.Trim(prefix, "/")
	return &Local{dir: dir, prefix: prefix, now: time.Now}, nil
}

func (s *Local) Dir() string { return s.dir }

func (s *Local) Prefix() string { return s.prefix }

// Save writes content under a unique name derived from name.
func (s *Local) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	stored := fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), uuid.NewString()[:8], cleanName(name))

	f, err := os.OpenFile(filepath.Join(s.dir, stored), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err = io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close file: %w", err)
	}
	return path.Join(s.prefix, stored), nil
}

// Delete removes the file behind ref. A file that is already gone is not
// an error.
func (s *Local) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := s.nameOf(ref)
	if err != nil {
		return err
	}
	if err = os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func (s *Local) nameOf(ref string) (string, error) {
	rest, ok := strings.CutPrefix(ref, s.prefix+"/")
	if !ok || rest == "" || strings.ContainsAny(rest, `/\`) || rest == "." || rest == ".." {
		return "", fmt.Errorf("%w: %q", ErrForeignReference, ref)
	}
	return rest, nil
}

func cleanName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}
