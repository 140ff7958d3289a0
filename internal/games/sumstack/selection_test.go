package sumstack

import "testing"

func TestSelectionToggle(t *testing.T) {
	var sel Selection

	sel.Toggle(1)
	sel.Toggle(2)
	sel.Toggle(3)

	if sel.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", sel.Len())
	}

	// Toggling an existing ID removes it
	sel.Toggle(2)
	if sel.Has(2) {
		t.Error("Toggle should remove an already-selected ID")
	}

	// Order of the remaining IDs is preserved
	ids := sel.IDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Errorf("IDs() = %v, expected [1 3]", ids)
	}

	// Re-toggling appends at the end
	sel.Toggle(2)
	ids = sel.IDs()
	if ids[len(ids)-1] != 2 {
		t.Errorf("re-toggled ID should append at the end, got %v", ids)
	}

	sel.Clear()
	if sel.Len() != 0 {
		t.Error("Clear should empty the selection")
	}
}

func TestSumIgnoresStaleIDs(t *testing.T) {
	blocks := []Block{
		{ID: 1, Value: 3},
		{ID: 2, Value: 5},
	}

	// ID 99 is not on the grid and contributes 0
	if got := Sum([]BlockID{1, 99, 2}, blocks); got != 8 {
		t.Errorf("Sum() = %d, expected 8", got)
	}
}

func TestEvaluate(t *testing.T) {
	// The spec scenario grid: blocks valued 3, 5 and 2 with target 5.
	blocks := []Block{
		{ID: 1, Value: 3, Row: 0, Col: 0},
		{ID: 2, Value: 5, Row: 0, Col: 1},
		{ID: 3, Value: 2, Row: 0, Col: 2},
	}
	target := 5

	tests := []struct {
		name     string
		ids      []BlockID
		expected Outcome
	}{
		{"single exact match", []BlockID{2}, OutcomeSuccess},
		{"pair summing to target", []BlockID{1, 3}, OutcomeSuccess},
		{"sum above target", []BlockID{1, 2}, OutcomeOvershoot},
		{"sum below target", []BlockID{1}, OutcomePending},
		{"below then stale id", []BlockID{3, 42}, OutcomePending},
		{"empty selection", nil, OutcomePending},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Evaluate(tc.ids, blocks, target)
			if result != tc.expected {
				t.Errorf("Evaluate() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomePending.String() != "pending" ||
		OutcomeSuccess.String() != "success" ||
		OutcomeOvershoot.String() != "overshoot" {
		t.Error("Outcome.String() returned unexpected names")
	}
}
