package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{3.5, 1},
		{-0.01, -1},
		{0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Sign(c.in), "Sign(%v)", c.in)
	}
}

func TestClampAndSeconds(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(4, -1, 1))
	assert.Equal(t, -1.0, Clamp(-4, -1, 1))
	assert.Equal(t, 0.25, Clamp(0.25, -1, 1))
	assert.Equal(t, 350*time.Millisecond, Seconds(0.35))
	assert.True(t, Approximately(Lerp(0, 10, 0.5), 5))
}
