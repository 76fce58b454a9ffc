package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveAndDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.Save(ctx, "Scan.PDF", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, PublicPrefix))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	data, err := os.ReadFile(filepath.Join(store.Root(), strings.TrimPrefix(url, PublicPrefix)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, store.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(store.Root(), strings.TrimPrefix(url, PublicPrefix)))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Delete(ctx, url))
}

func TestFileStore_RejectsUnsupportedType(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "payload.exe", strings.NewReader("MZ"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFileStore_DeleteRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, store.Delete(context.Background(), "/uploads/../etc/passwd"), ErrInvalidKey)
	assert.ErrorIs(t, store.Delete(context.Background(), ""), ErrInvalidKey)
}

func TestAllowed(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.pdf"} {
		assert.True(t, Allowed(name), name)
	}
	for _, name := range []string{"a.gif", "noext", "x.pdf.exe"} {
		assert.False(t, Allowed(name), name)
	}
}

func TestNewFileStore_EmptyRoot(t *testing.T) {
	_, err := NewFileStore("  ")
	assert.Error(t, err)
}
