package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// WaveScript lets a tengo script size each wave. The script sees `wave` (1
// based) and `per_wave` and sets `count`; leaving it undefined keeps per_wave.
type WaveScript struct {
	compiled *tengo.Compiled
}

func NewWaveScript(src []byte) (*WaveScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("wave", 0)
	_ = script.Add("per_wave", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("wave script: compile: %w", err)
	}
	return &WaveScript{compiled: compiled}, nil
}

// WaveSize runs the script for one wave. Negative results clamp to zero.
func (s *WaveScript) WaveSize(wave, perWave int) (int, error) {
	if s == nil || s.compiled == nil {
		return perWave, nil
	}
	c := s.compiled.Clone()
	if err := c.Set("wave", wave); err != nil {
		return perWave, fmt.Errorf("wave script: set wave: %w", err)
	}
	if err := c.Set("per_wave", perWave); err != nil {
		return perWave, fmt.Errorf("wave script: set per_wave: %w", err)
	}
	if err := c.Run(); err != nil {
		return perWave, fmt.Errorf("wave script: run: %w", err)
	}
	if !c.IsDefined("count") {
		return perWave, nil
	}
	n := c.Get("count").Int()
	if n < 0 {
		n = 0
	}
	return n, nil
}
