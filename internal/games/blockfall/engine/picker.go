package engine

import "math/rand"

// Picker chooses the shape of each newly spawned piece.
type Picker interface {
	Next() ShapeID
}

// RandomPicker draws shapes uniformly from a seeded source, so equal seeds
// replay equal piece sequences.
type RandomPicker struct {
	rng *rand.Rand
	n   int
}

// NewRandomPicker creates a picker over n shapes.
func NewRandomPicker(seed int64, n int) *RandomPicker {
	return &RandomPicker{
		rng: rand.New(rand.NewSource(seed)),
		n:   n,
	}
}

// Next returns a random shape ID in [0, n).
func (p *RandomPicker) Next() ShapeID {
	return ShapeID(p.rng.Intn(p.n))
}

// SequencePicker cycles through a fixed list of shapes.
type SequencePicker struct {
	ids  []ShapeID
	next int
}

// NewSequencePicker creates a picker that repeats ids in order.
func NewSequencePicker(ids ...ShapeID) *SequencePicker {
	if len(ids) == 0 {
		ids = []ShapeID{0}
	}
	return &SequencePicker{ids: ids}
}

// Next returns the next shape in the sequence.
func (p *SequencePicker) Next() ShapeID {
	id := p.ids[p.next]
	p.next = (p.next + 1) % len(p.ids)
	return id
}
