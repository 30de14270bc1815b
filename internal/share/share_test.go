package share

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSharer_Unavailable(t *testing.T) {
	s := &FileSharer{}
	if s.Available() {
		t.Error("sharer with no directory reported available")
	}
	if err := s.Share(context.Background(), "whatever.json", "application/json"); err == nil {
		t.Error("Share() with no directory succeeded")
	}
}

func TestFileSharer_CopiesIntoShareDir(t *testing.T) {
	srcDir := t.TempDir()
	shareDir := filepath.Join(t.TempDir(), "outbox")

	src := filepath.Join(srcDir, "export.json")
	if err := os.WriteFile(src, []byte(`[]`), 0600); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}

	s := &FileSharer{Dir: shareDir}
	if !s.Available() {
		t.Fatal("sharer with a creatable directory reported unavailable")
	}
	if err := s.Share(context.Background(), src, "application/json"); err != nil {
		t.Fatalf("Share() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(shareDir, "export.json"))
	if err != nil {
		t.Fatalf("shared file missing: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("shared file content = %q, want %q", data, `[]`)
	}
}

func TestFileSharer_MissingSource(t *testing.T) {
	s := &FileSharer{Dir: t.TempDir()}
	if err := s.Share(context.Background(), "/no/such/file.json", "application/json"); err == nil {
		t.Error("Share() of a missing source succeeded")
	}
}
