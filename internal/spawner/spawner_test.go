package spawner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/typebind/internal/source"
)

func stubParse(_ []string, content []byte) ([]source.Item, error) {
	return []source.Item{{Kind: source.ItemUnknown}}, nil
}

func TestDiscardAlwaysSkips(t *testing.T) {
	var d Discard
	step, err := d.CreateStep([]string{"anything"})
	assert.NoError(t, err)
	assert.Nil(t, step)
}

func TestFilesystemCreateStepReadsDotRsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.rs"), []byte("struct Foo;"), 0o644))

	fs := NewFilesystem(dir, "crate", "lib", stubParse)
	step, err := fs.CreateStep([]string{"lib"})
	require.NoError(t, err)
	require.NotNil(t, step)
	assert.Equal(t, []string{"lib"}, step.Path)
}

func TestFilesystemCreateStepFallsBackToModRs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "models"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models", "mod.rs"), []byte("struct Foo;"), 0o644))

	fs := NewFilesystem(dir, "crate", "lib", stubParse)
	step, err := fs.CreateStep([]string{"models"})
	require.NoError(t, err)
	require.NotNil(t, step)
}

func TestFilesystemCreateStepMissingFileReturnsNilNil(t *testing.T) {
	fs := NewFilesystem(t.TempDir(), "crate", "lib", stubParse)
	step, err := fs.CreateStep([]string{"absent"})
	assert.NoError(t, err)
	assert.Nil(t, step)
}

func TestFilesystemCreateStepPropagatesParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.rs"), []byte("garbage"), 0o644))

	fs := NewFilesystem(dir, "crate", "lib", func([]string, []byte) ([]source.Item, error) {
		return nil, assert.AnError
	})
	_, err := fs.CreateStep([]string{"lib"})
	assert.Error(t, err)
}

func TestFilesystemCreateStepEmptyPathResolvesRootName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.rs"), []byte("struct Foo;"), 0o644))

	fs := NewFilesystem(dir, "crate", "lib", stubParse)
	step, err := fs.CreateStep(nil)
	require.NoError(t, err)
	require.NotNil(t, step)
	assert.Empty(t, step.Path, "the crate root keeps an empty module path even though lib.rs backed it")
}

func TestFilesystemPrefetchPopulatesCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.rs"), []byte("struct Foo;"), 0o644))

	fs := NewFilesystem(dir, "crate", "lib", stubParse)
	require.NoError(t, fs.Prefetch([][]string{{"lib"}, {"absent"}}, 2))

	content, ok := fs.cached(filepath.Join(dir, "lib.rs"))
	require.True(t, ok)
	assert.Equal(t, "struct Foo;", string(content))

	// CreateStep should now be served from cache without touching disk again.
	step, err := fs.CreateStep([]string{"lib"})
	require.NoError(t, err)
	assert.NotNil(t, step)
}
