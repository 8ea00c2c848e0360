package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/storage"
)

func TestDisk_SaveAndRead(t *testing.T) {
	disk, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, disk.Save("123_abcd.pdf", []byte("pdf bytes")))

	data, err := disk.Read("123_abcd.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), data)

	exists, err := disk.Exists("123_abcd.pdf")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDisk_ReadMissing(t *testing.T) {
	disk, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)

	_, err = disk.Read("missing.pdf")
	assert.ErrorIs(t, err, storage.ErrNotExist)
}

func TestDisk_Delete(t *testing.T) {
	disk, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, disk.Save("gone.pdf", []byte("x")))
	require.NoError(t, disk.Delete("gone.pdf"))

	exists, err := disk.Exists("gone.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a name that is already gone is not an error.
	assert.NoError(t, disk.Delete("gone.pdf"))
}

func TestDisk_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	disk, err := storage.NewDisk(dir)
	require.NoError(t, err)

	require.NoError(t, disk.Save("../escape.pdf", []byte("x")))

	// The file lands inside the upload dir under its base name.
	_, err = os.Stat(filepath.Join(dir, "escape.pdf"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewDisk_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")

	_, err := storage.NewDisk(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
