package load

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheath/equation"
)

func TestLoadString(t *testing.T) {
	sheet, err := LoadString(`
.mode single-phase
I_sg 1k
frequency 50
S 1.5
d 50m
r_g 0.02
`)
	require.NoError(t, err)
	assert.Equal(t, equation.ReducedSinglePhase, sheet.Mode)
	assert.Equal(t, 1000.0, sheet.Values[equation.FieldFaultCurrent])
	assert.InDelta(t, 0.05, sheet.Values[equation.FieldDiameter], 1e-15)
	assert.Len(t, sheet.Values, 5)
}

func TestLoadDefaultMode(t *testing.T) {
	sheet, err := LoadString("I_sg 1000\nR_g 0.5\n")
	require.NoError(t, err)
	assert.Equal(t, equation.ThreePhase, sheet.Mode)
	assert.Equal(t, 0.5, sheet.Values[equation.FieldGroundResistance])
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown mode", func(t *testing.T) {
		_, err := LoadString(".mode two-phase\n")
		require.Error(t, err)
		assert.True(t, errors.Is(err, equation.ErrUnknownMode))
		assert.Contains(t, err.Error(), "第 1 行")
	})

	t.Run("field not in mode", func(t *testing.T) {
		_, err := LoadString(".mode single-phase\nR_g 0.5\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "R_g")
	})

	t.Run("duplicate field", func(t *testing.T) {
		_, err := LoadString("I_sg 1\nI_sg 2\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "第 2 行")
		assert.Contains(t, err.Error(), "第 1 行")
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := LoadString("I_sg lots\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lots")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "none.sheet"))
		require.Error(t, err)
	})
}

func TestExportRoundTrip(t *testing.T) {
	for _, mode := range equation.Modes() {
		sheet := &Sheet{Mode: mode, Values: equation.DefaultValues(mode)}
		path := filepath.Join(t.TempDir(), mode.String()+".sheet")
		require.NoError(t, ExportFile(path, sheet))

		back, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, sheet.Mode, back.Mode)
		assert.Equal(t, sheet.Values, back.Values)
	}
}

func TestExportOrder(t *testing.T) {
	var buf bytes.Buffer
	sheet := &Sheet{Mode: equation.ReducedSinglePhase, Values: equation.Values{
		equation.FieldRadius:       0.02,
		equation.FieldFaultCurrent: 1000,
	}}
	require.NoError(t, Export(&buf, sheet))
	assert.Equal(t, ".mode single-phase\nI_sg 1000\nr_g 0.02\n", buf.String())
}
