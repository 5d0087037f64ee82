package ecs

import (
	"sort"
	"time"
)

// TimerSlot names one kind of pending continuation. An entity has at most
// one pending continuation per slot.
type TimerSlot string

const (
	SlotAttackLock  TimerSlot = "attack_lock"
	SlotChaseEnable TimerSlot = "chase_enable"
	SlotDestroy     TimerSlot = "destroy"
	SlotWave        TimerSlot = "wave"
)

// Continuation runs when its timer comes due.
type Continuation func(w *World, e Entity)

type timerKey struct {
	entity Entity
	slot   TimerSlot
}

type timerEntry struct {
	key    timerKey
	wakeAt time.Duration
	seq    uint64
	fn     Continuation
}

// Timers is the table of scheduled "wake at T" continuations keyed by
// (entity, slot). It is polled once per tick; nothing ever blocks.
type Timers struct {
	entries map[timerKey]*timerEntry
	seq     uint64
}

// Schedule arms a continuation for (e, slot), replacing any pending one.
func (t *Timers) Schedule(e Entity, slot TimerSlot, wakeAt time.Duration, fn Continuation) {
	if t == nil || fn == nil {
		return
	}
	if t.entries == nil {
		t.entries = make(map[timerKey]*timerEntry)
	}
	t.seq++
	key := timerKey{entity: e, slot: slot}
	t.entries[key] = &timerEntry{key: key, wakeAt: wakeAt, seq: t.seq, fn: fn}
}

// Cancel drops the pending continuation for (e, slot).
func (t *Timers) Cancel(e Entity, slot TimerSlot) bool {
	if t == nil {
		return false
	}
	key := timerKey{entity: e, slot: slot}
	if _, ok := t.entries[key]; !ok {
		return false
	}
	delete(t.entries, key)
	return true
}

// CancelAll drops every pending continuation owned by e.
func (t *Timers) CancelAll(e Entity) int {
	if t == nil {
		return 0
	}
	n := 0
	for key := range t.entries {
		if key.entity == e {
			delete(t.entries, key)
			n++
		}
	}
	return n
}

// Pending returns the wake time of the continuation for (e, slot).
func (t *Timers) Pending(e Entity, slot TimerSlot) (time.Duration, bool) {
	if t == nil {
		return 0, false
	}
	entry, ok := t.entries[timerKey{entity: e, slot: slot}]
	if !ok {
		return 0, false
	}
	return entry.wakeAt, true
}

// Len returns the number of pending continuations.
func (t *Timers) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// RunDue fires every continuation with wakeAt <= now, earliest first and in
// scheduling order for ties. A continuation cancelled or re-armed by an
// earlier one in the same pass does not fire.
func (t *Timers) RunDue(w *World, now time.Duration) int {
	if t == nil || len(t.entries) == 0 {
		return 0
	}
	var due []*timerEntry
	for _, entry := range t.entries {
		if entry.wakeAt <= now {
			due = append(due, entry)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].wakeAt != due[j].wakeAt {
			return due[i].wakeAt < due[j].wakeAt
		}
		return due[i].seq < due[j].seq
	})
	fired := 0
	for _, entry := range due {
		if t.entries[entry.key] != entry {
			continue
		}
		delete(t.entries, entry.key)
		entry.fn(w, entry.key.entity)
		fired++
	}
	return fired
}
