package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveScript(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wave    int
		perWave int
		want    int
	}{
		{"no_count_keeps_default", `x := 1`, 4, 3, 3},
		{"grows_every_third_wave", `count := per_wave + wave / 3`, 7, 3, 5},
		{"negative_clamps", `count := -2`, 1, 3, 0},
		{"uses_stdlib", `math := import("math"); count := int(math.sqrt(wave))`, 9, 5, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := NewWaveScript([]byte(c.src))
			require.NoError(t, err)
			got, err := s.WaveSize(c.wave, c.perWave)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestWaveScriptCompileError(t *testing.T) {
	_, err := NewWaveScript([]byte(`count := (`))
	assert.Error(t, err)
}

func TestNilWaveScriptKeepsDefault(t *testing.T) {
	var s *WaveScript
	got, err := s.WaveSize(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}
