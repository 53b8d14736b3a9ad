package paths

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badc0de.net/pkg/go-icn/datafiles"
)

func TestFindInDataDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.icn"), []byte{0x80}, 0644))
	t.Setenv(EnvDataDir, dir)

	assert.Equal(t, filepath.Join(dir, "test.icn"), Find("test.icn"))
	assert.Equal(t, "", Find("missing.icn"))

	b, err := ReadFile("test.icn")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, b)
}

func TestOpenEmbedded(t *testing.T) {
	t.Setenv(EnvDataDir, t.TempDir())
	f, err := Open(datafiles.DemoPalette)
	require.NoError(t, err)
	defer f.Close()

	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Len(t, b, 768)

	_, err = Open("missing.icn")
	assert.Equal(t, os.ErrNotExist, errors.Cause(err))
}
