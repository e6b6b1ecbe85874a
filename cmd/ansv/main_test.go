package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunMissingFile(t *testing.T) {
	assert.Equal(t, 1, run([]string{"/nonexistent/path/does-not-exist"}))
}

func TestRunEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	assert.NoError(t, os.WriteFile(path, nil, 0o644))
	assert.Equal(t, 1, run([]string{path}))
}

func TestRunSucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	assert.NoError(t, os.WriteFile(path, []byte{4, 2, 5, 3, 1, 6}, 0o644))
	assert.Equal(t, 0, run([]string{"-workers", "3", path}))
}
