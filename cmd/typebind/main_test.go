package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/typebind/internal/tidlast"
)

func TestHeaderStyleFromFlag(t *testing.T) {
	assert.Equal(t, tidlast.HeaderStyle{Standard: true}, headerStyleFromFlag(""))
	assert.Equal(t, tidlast.HeaderStyle{Standard: true}, headerStyleFromFlag("standard"))
	assert.Equal(t, tidlast.HeaderStyle{None: true}, headerStyleFromFlag("none"))
	assert.Equal(t, tidlast.HeaderStyle{Custom: "// mine"}, headerStyleFromFlag("// mine"))
}

func TestRunBatchMissingInputProducesFailedToLaunch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "typebind.yaml")
	yaml := "roots:\n  - input: " + filepath.Join(dir, "src", "lib.rs") + "\n    output: " + filepath.Join(dir, "out") + "\n"
	require.NoError(t, os.WriteFile(file, []byte(yaml), 0o644))

	err := runBatch(file)
	assert.Error(t, err, "no lib.rs exists on disk, so the root step can never be created")
}

func TestRunBatchUnknownModeRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "lib.rs"), []byte("struct Foo;"), 0o644))

	file := filepath.Join(dir, "typebind.yaml")
	yaml := "roots:\n  - input: " + filepath.Join(dir, "src", "lib.rs") + "\n    output: " + filepath.Join(dir, "out") + "\n    mode: bogus\n"
	require.NoError(t, os.WriteFile(file, []byte(yaml), 0o644))

	// runBatch rejects the unknown mode in its mode switch before p.Run is
	// called, so lib.rs is never parsed and stubParse's error cannot mask
	// the mode error; batch must surface an error rather than succeed.
	err := runBatch(file)
	assert.Error(t, err)
}

func TestRunBatchMissingConfigFile(t *testing.T) {
	err := runBatch(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
