package disktier

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WriteRead(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Write("alpha", []byte("payload")))

	got, err := s.Read("alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestStore_Read_Miss(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Read("absent")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestStore_Write_CreatesRootLazily(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "cachedir")
	s := New(root)
	require.NoError(t, s.Write("k", []byte("v")))

	_, err := os.Stat(filepath.Join(root, "k"))
	assert.NoError(t, err)
}

func TestStore_Write_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Write("k", []byte("v1")))
	require.NoError(t, s.Write("k", []byte("v2")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, ent := range entries {
		assert.False(t, strings.HasSuffix(ent.Name(), ".tmp"), "no .tmp sibling may survive: %s", ent.Name())
	}

	got, err := s.Read("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestStore_Remove(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Write("k", []byte("v")))
	require.NoError(t, s.Remove("k"))
	require.NoError(t, s.Remove("k"), "missing file is not an error")

	_, err := s.Read("k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestStore_Purge_MatchOnly(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Write("mine_a", []byte("1")))
	require.NoError(t, s.Write("mine_b", []byte("2")))
	require.NoError(t, s.Write("other", []byte("3")))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	removed := s.Purge(func(name string) bool { return strings.HasPrefix(name, "mine_") })
	assert.Len(t, removed, 2)

	_, err := s.Read("other")
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "subdir"))
	assert.NoError(t, err, "directories are never purged")
}

func TestStore_Purge_MissingRoot(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Nil(t, s.Purge(func(string) bool { return true }))
}

func TestStore_Path(t *testing.T) {
	s := New("/tmp/cache-root")
	assert.Equal(t, filepath.Join("/tmp/cache-root", "key1"), s.Path("key1"))
	assert.Equal(t, "/tmp/cache-root", s.Root())
}
