package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalletMutations(t *testing.T) {
	w := NewWallet()

	var totals []int
	w.OnChanged(func(total int) { totals = append(totals, total) })

	assert.True(t, w.Add(5))
	assert.False(t, w.Add(0))
	assert.False(t, w.Add(-3))
	assert.False(t, w.Spend(6))
	assert.False(t, w.Spend(0))
	assert.True(t, w.Spend(2))
	w.Reset()

	assert.Equal(t, 0, w.Coins())
	assert.Equal(t, []int{0, 5, 3, 0}, totals)
}

func TestWalletLateSubscriber(t *testing.T) {
	w := NewWallet()
	w.Add(7)

	var got int
	w.OnChanged(func(total int) { got = total })
	assert.Equal(t, 7, got)
}
