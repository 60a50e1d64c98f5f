// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package quiz

import (
	"math/rand/v2"
	"time"

	"ir-verbs/internal/verb"
)

// Selector hands out the verbs of a table one at a time, in random order,
// without repetition. Build a new Selector for every run.
type Selector struct {
	table     verb.Table
	order     []int // shuffled indices into table
	presented int
}

// NewRand returns a PRNG seeded with seed, or with the current time when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSelector shuffles the indices of table with rng. A nil rng uses a
// time-seeded generator.
func NewSelector(table verb.Table, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = NewRand(0)
	}
	order := make([]int, len(table))
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return &Selector{table: table, order: order}
}

// Next returns the next unseen verb, or false once every verb was presented.
func (s *Selector) Next() (verb.Verb, bool) {
	if s.presented >= len(s.order) {
		return verb.Verb{}, false
	}
	v := s.table[s.order[s.presented]]
	s.presented++
	return v, true
}

// Presented is the number of verbs handed out so far.
func (s *Selector) Presented() int { return s.presented }

// Remaining is the number of verbs not yet handed out.
func (s *Selector) Remaining() int { return len(s.order) - s.presented }

// Len is the size of the underlying table.
func (s *Selector) Len() int { return len(s.order) }
