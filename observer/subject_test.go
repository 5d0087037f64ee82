package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectReplaysToLateSubscriber(t *testing.T) {
	s := NewSubject(3)
	s.Publish(2)

	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })
	require.Equal(t, []int{2}, got, "late subscriber must see current value eagerly")

	s.Publish(1)
	assert.Equal(t, []int{2, 1}, got)
}

func TestSubjectWithoutValueDoesNotReplay(t *testing.T) {
	var s Subject[string]
	calls := 0
	s.Subscribe(func(string) { calls++ })
	assert.Equal(t, 0, calls)

	s.Publish("x")
	assert.Equal(t, 1, calls)
	v, ok := s.Value()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestSubjectUnsubscribe(t *testing.T) {
	s := NewSubject(0)
	var a, b int
	unsubA := s.Subscribe(func(v int) { a = v })
	s.Subscribe(func(v int) { b = v })
	require.Equal(t, 2, s.Len())

	unsubA()
	s.Publish(7)
	assert.Equal(t, 0, a)
	assert.Equal(t, 7, b)
	assert.Equal(t, 1, s.Len())
}

func TestSubjectNilSafe(t *testing.T) {
	var s *Subject[int]
	s.Publish(1)
	s.Subscribe(func(int) {})()
	_, ok := s.Value()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}
