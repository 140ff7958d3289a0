package sumstack

// Outcome is the result of evaluating the current selection against the
// target sum. Exactly one outcome applies to any non-empty selection.
type Outcome int

const (
	// OutcomePending means the sum is still below the target; wait for
	// more selections.
	OutcomePending Outcome = iota
	// OutcomeSuccess means the sum equals the target.
	OutcomeSuccess
	// OutcomeOvershoot means the sum exceeds the target; the selection
	// must be flagged and then cleared. No score penalty.
	OutcomeOvershoot
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeSuccess:
		return "success"
	case OutcomeOvershoot:
		return "overshoot"
	default:
		return "unknown"
	}
}

// Selection is an insertion-ordered set of block IDs. Toggling an ID that
// is already present removes it; duplicates are never stored.
type Selection struct {
	ids []BlockID
}

// Toggle removes the ID if present, otherwise appends it.
func (s *Selection) Toggle(id BlockID) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
}

// Has reports whether the ID is currently selected.
func (s *Selection) Has(id BlockID) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = s.ids[:0]
}

// Len returns the number of selected IDs.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the selected IDs in insertion order.
func (s *Selection) IDs() []BlockID {
	out := make([]BlockID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Sum returns the total value of the selected blocks. IDs not present in
// blocks contribute 0; the engine tolerates stale references rather than
// failing.
func Sum(ids []BlockID, blocks []Block) int {
	sum := 0
	for _, id := range ids {
		for _, b := range blocks {
			if b.ID == id {
				sum += b.Value
				break
			}
		}
	}
	return sum
}

// Evaluate compares the selection sum against the target.
// The three outcomes are exhaustive and mutually exclusive.
func Evaluate(ids []BlockID, blocks []Block, target int) Outcome {
	sum := Sum(ids, blocks)
	switch {
	case sum == target:
		return OutcomeSuccess
	case sum > target:
		return OutcomeOvershoot
	default:
		return OutcomePending
	}
}
