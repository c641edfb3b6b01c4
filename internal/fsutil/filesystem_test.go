package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestOSFileSystem_CreateRenameRemove(t *testing.T) {
	var fs FileSystem = OSFileSystem{}
	tmpDir := t.TempDir()
	tmp := filepath.Join(tmpDir, "out.fits.tmp")
	final := filepath.Join(tmpDir, "out.fits")

	w, err := fs.Create(tmp)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("SIMPLE")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if err := os.WriteFile(final, []byte("stale"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.Rename(tmp, final); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Error("expected temporary file to be gone after rename")
	}

	data, err := os.ReadFile(final)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "SIMPLE" {
		t.Errorf("expected 'SIMPLE', got %q", data)
	}

	if err := fs.Remove(final); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(final); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}
	if err := RemoveIfExists(fs, final); err != nil {
		t.Errorf("removing a missing file should succeed, got %v", err)
	}
}

func TestOSFileSystem_CreateMissingDir(t *testing.T) {
	fs := OSFileSystem{}
	_, err := fs.Create(filepath.Join(t.TempDir(), "no", "such", "dir", "out.fits"))
	if err == nil {
		t.Fatal("expected error creating file in missing directory")
	}
}

func TestRemoveIfExists(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if err := RemoveIfExists(mfs, "/missing.fits"); err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}

	if err := mfs.WriteFile("/present.fits", []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := RemoveIfExists(mfs, "/present.fits"); err != nil {
		t.Fatalf("RemoveIfExists failed: %v", err)
	}
	if mfs.Exists("/present.fits") {
		t.Error("expected file to be removed")
	}
}

func TestMemoryFileSystem_WriteAndRead(t *testing.T) {
	mfs := NewMemoryFileSystem()

	testData := []byte("hello, world")
	err := mfs.WriteFile("/test.txt", testData, 0644)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := mfs.ReadFile("/test.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestMemoryFileSystem_CreateAndWrite(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, err := mfs.Create("/created.txt")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = w.Write([]byte("created content"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	err = w.Close()
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := mfs.ReadFile("/created.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != "created content" {
		t.Errorf("expected 'created content', got %q", data)
	}
}

func TestMemoryFileSystem_CreateNeedsParent(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if _, err := mfs.Create("/missing/out.fits"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}

	if err := mfs.MkdirAll("/data/out", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	w, err := mfs.Create("/data/out/out.fits")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_ = w.Close()

	if _, err := mfs.Create("/data/out"); err == nil {
		t.Error("expected error creating a file over a directory")
	}
}

func TestMemoryFileSystem_WriteErr(t *testing.T) {
	mfs := NewMemoryFileSystem()
	boom := errors.New("disk full")
	mfs.WriteErr = boom

	w, err := mfs.Create("/partial.fits")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("data")); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
}

func TestMemoryFileSystem_Rename(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if err := mfs.WriteFile("/a.tmp", []byte("new"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := mfs.WriteFile("/a.fits", []byte("old"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := mfs.Rename("/a.tmp", "/a.fits"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	data, err := mfs.ReadFile("/a.fits")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("expected 'new', got %q", data)
	}
	if mfs.Exists("/a.tmp") {
		t.Error("expected source to be gone after rename")
	}

	if err := mfs.Rename("/nope", "/a.fits"); err == nil {
		t.Error("expected error renaming a missing file")
	}
	if err := mfs.Rename("/a.fits", "/missing/a.fits"); err == nil {
		t.Error("expected error renaming into a missing directory")
	}
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem()

	err := mfs.WriteFile("/stattest.txt", []byte("stat content"), 0644)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := mfs.Stat("/stattest.txt")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	if info.Name() != "stattest.txt" {
		t.Errorf("expected name 'stattest.txt', got %q", info.Name())
	}

	if info.Size() != int64(len("stat content")) {
		t.Errorf("expected size %d, got %d", len("stat content"), info.Size())
	}

	if info.IsDir() {
		t.Error("expected file, not directory")
	}

	if _, err := mfs.Stat("/nonexistent.txt"); err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestMemoryFileSystem_Remove(t *testing.T) {
	mfs := NewMemoryFileSystem()

	err := mfs.WriteFile("/removeme.txt", []byte("delete"), 0644)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	err = mfs.Remove("/removeme.txt")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if mfs.Exists("/removeme.txt") {
		t.Error("expected file to not exist after removal")
	}

	if err := mfs.Remove("/removeme.txt"); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestMemoryFileSystem_Files(t *testing.T) {
	mfs := NewMemoryFileSystem()

	for _, name := range []string{"/b.fits", "/a.fits", "./dirty/../c.fits"} {
		if err := mfs.WriteFile(name, nil, 0644); err != nil {
			t.Fatalf("WriteFile %s failed: %v", name, err)
		}
	}

	got := mfs.Files()
	sort.Strings(got)
	want := []string{"/a.fits", "/b.fits", "c.fits"}
	if len(got) != len(want) {
		t.Fatalf("Files() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Files()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
