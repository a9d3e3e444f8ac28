// Package upload validates uploaded files and turns accepted ones into
// references (a served file path or an inline data URL). It never touches
// the store; writing a reference into the owning entity is the caller's job.
package upload

import (
	"encoding/base64"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Constraints bound what an upload field accepts.
type Constraints struct {
	AllowedTypes []string
	MaxBytes     int64
}

// CV accepts a single PDF resume up to 5MB.
var CV = Constraints{
	AllowedTypes: []string{"application/pdf"},
	MaxBytes:     5 * 1024 * 1024,
}

// ProjectImage accepts web image formats up to 2MB, small enough to store
// inline as a data URL.
var ProjectImage = Constraints{
	AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/webp"},
	MaxBytes:     2 * 1024 * 1024,
}

// ValidationError describes a rejected upload.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validate checks the declared content type and size against c.
func Validate(contentType string, size int64, c Constraints) error {
	mime := normalizeType(contentType)
	allowed := false
	for _, t := range c.AllowedTypes {
		if mime == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return &ValidationError{Reason: fmt.Sprintf("file type %q is not allowed", mime)}
	}
	if size > c.MaxBytes {
		return &ValidationError{Reason: fmt.Sprintf("file size must be less than %dMB", c.MaxBytes/(1024*1024))}
	}
	return nil
}

// SaveFile writes data to dir/name and returns the public reference path
// under which the file is served ("/uploads/<name>"). The caller is expected
// to serve dir at /uploads.
func SaveFile(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path.Join("/uploads", name), nil
}

// Remove deletes a stored file previously referenced by SaveFile. A missing
// file is not an error.
func Remove(dir, ref string) error {
	name := path.Base(ref)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DataURL encodes data as an inline base64 data URL.
func DataURL(contentType string, data []byte) string {
	return "data:" + normalizeType(contentType) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func normalizeType(contentType string) string {
	mime, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mime))
}
