package upload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		constraints Constraints
		wantErr     bool
	}{
		{"pdf within limit", "application/pdf", 1 << 20, CV, false},
		{"pdf at limit", "application/pdf", CV.MaxBytes, CV, false},
		{"pdf too large", "application/pdf", 6 << 20, CV, true},
		{"non-pdf rejected", "image/png", 100, CV, true},
		{"content type with params", "application/pdf; charset=binary", 100, CV, false},
		{"jpeg image", "image/jpeg", 1 << 20, ProjectImage, false},
		{"webp image", "image/webp", 1 << 20, ProjectImage, false},
		{"gif rejected", "image/gif", 100, ProjectImage, true},
		{"image too large", "image/png", 3 << 20, ProjectImage, true},
		{"uppercase type accepted", "IMAGE/PNG", 100, ProjectImage, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.contentType, tt.size, tt.constraints)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q, %d) err = %v, wantErr %v", tt.contentType, tt.size, err, tt.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
			}
		})
	}
}

func TestSaveFileAndRemove(t *testing.T) {
	dir := t.TempDir()
	ref, err := SaveFile(dir, "cv.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	if ref != "/uploads/cv.pdf" {
		t.Fatalf("ref = %q", ref)
	}
	data, err := os.ReadFile(filepath.Join(dir, "cv.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "%PDF-1.4" {
		t.Fatalf("stored bytes = %q", data)
	}

	if err := Remove(dir, ref); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cv.pdf")); !os.IsNotExist(err) {
		t.Fatal("expected file removed")
	}
	// Removing an already-missing file is fine.
	if err := Remove(dir, ref); err != nil {
		t.Fatal(err)
	}
}

func TestDataURL(t *testing.T) {
	got := DataURL("image/png", []byte{1, 2, 3})
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("data url = %q", got)
	}
	if got != "data:image/png;base64,AQID" {
		t.Fatalf("data url = %q", got)
	}
}
