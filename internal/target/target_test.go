package target

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venvexec/cli/internal/constants"
)

func TestNew(t *testing.T) {
	base := filepath.Join("some", "base")
	tgt := New(base)

	assert.Equal(t, base, tgt.BaseDir)
	assert.Equal(t, filepath.Join(base, constants.EnvironmentDirName), tgt.EnvironmentDir)
	assert.Equal(t, filepath.Join(base, constants.EntryPointFileName), tgt.Application)

	// The interpreter lives in the environment's executables directory
	assert.Equal(t, filepath.Join(tgt.EnvironmentDir, BinDirName), filepath.Dir(tgt.Interpreter))
}

func TestNewFromExecutable(t *testing.T) {
	tgt, err := NewFromExecutable()
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(tgt.BaseDir))
}
