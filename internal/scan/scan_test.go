package scan_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"clipmeta/internal/scan"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestVideosFiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b", "Halo_replay_2024.01.02-10.20.mp4"))
	touch(t, filepath.Join(root, "a", "Game 2023.06.11 - 00.31.42.02.DVR.MP4"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "thumb.jpg"))
	touch(t, filepath.Join(root, "noext"))
	if err := os.MkdirAll(filepath.Join(root, "folder.mp4"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := scan.Videos(root, nil, nil)
	if err != nil {
		t.Fatalf("Videos returned error: %v", err)
	}
	got := scan.Names(files)
	want := []string{"Game 2023.06.11 - 00.31.42.02.DVR.MP4", "Halo_replay_2024.01.02-10.20.mp4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected names: got %v want %v", got, want)
	}
	for _, f := range files {
		if !filepath.IsAbs(f.Path) {
			t.Errorf("expected absolute path, got %q", f.Path)
		}
		if filepath.Base(f.Path) != f.Name {
			t.Errorf("path %q does not end in %q", f.Path, f.Name)
		}
	}
}

func TestVideosCustomExtensions(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "one.mkv"))
	touch(t, filepath.Join(root, "two.mp4"))
	touch(t, filepath.Join(root, "three.avi"))

	files, err := scan.Videos(root, []string{".MKV", "avi", " "}, nil)
	if err != nil {
		t.Fatalf("Videos returned error: %v", err)
	}
	got := scan.Names(files)
	want := []string{"one.mkv", "three.avi"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected names: got %v want %v", got, want)
	}
}

func TestVideosRelativeRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "clip.mp4"))
	t.Chdir(root)

	files, err := scan.Videos(".", nil, nil)
	if err != nil {
		t.Fatalf("Videos returned error: %v", err)
	}
	if len(files) != 1 || !filepath.IsAbs(files[0].Path) {
		t.Fatalf("unexpected files: %+v", files)
	}
}

func TestVideosMissingRoot(t *testing.T) {
	_, err := scan.Videos(filepath.Join(t.TempDir(), "missing"), nil, nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := scan.Videos("  ", nil, nil); err == nil {
		t.Fatal("expected error for empty root")
	}
}
