package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskPhotoStoreSave(t *testing.T) {
	store, err := NewDiskPhotoStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rel, err := store.Save("collection_12_before", "truck.jpg", "image/jpeg", bytes.NewReader([]byte("jpegdata")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(rel, "collection_12_before"+string(os.PathSeparator)) {
		t.Errorf("stored path %q should live under its folder", rel)
	}
	if filepath.Ext(rel) != ".jpg" {
		t.Errorf("stored path %q should carry the jpg extension", rel)
	}

	data, err := os.ReadFile(filepath.Join(store.Root, rel))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "jpegdata" {
		t.Errorf("stored content = %q", data)
	}
}

func TestDiskPhotoStoreRejectsContentType(t *testing.T) {
	store, err := NewDiskPhotoStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = store.Save("f", "notes.txt", "text/plain", strings.NewReader("hello"))
	if !errors.Is(err, ErrUnsupportedPhotoMIME) {
		t.Fatalf("err = %v, want ErrUnsupportedPhotoMIME", err)
	}
}

func TestDiskPhotoStoreRejectsOversize(t *testing.T) {
	store, err := NewDiskPhotoStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	big := bytes.NewReader(make([]byte, maxPhotoBytes+1))
	_, err = store.Save("f", "huge.png", "image/png", big)
	if !errors.Is(err, ErrPhotoTooLarge) {
		t.Fatalf("err = %v, want ErrPhotoTooLarge", err)
	}

	// Nothing should be left behind after a rejected upload.
	entries, err := os.ReadDir(filepath.Join(store.Root, "f"))
	if err != nil {
		t.Fatalf("read folder: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no leftover files, found %d", len(entries))
	}
}

func TestDiskPhotoStoreDeleteMissing(t *testing.T) {
	store, err := NewDiskPhotoStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete("nope/missing.jpg"); err != nil {
		t.Fatalf("deleting a missing file should not error: %v", err)
	}
}
