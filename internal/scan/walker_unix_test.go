//go:build unix

package scan

import (
	"path/filepath"
	"reflect"
	"syscall"
	"testing"
)

func TestListFilesSkipsFIFO(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "config.toml"), "x")
	if err := syscall.Mkfifo(filepath.Join(root, "pipe"), 0644); err != nil {
		t.Skipf("mkfifo unsupported: %v", err)
	}

	got := ListFiles(root, nil)
	want := []string{filepath.Join(root, "config.toml")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListFiles = %v, want %v", got, want)
	}
}
