package chain

import (
	"errors"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	ch, err := New([]float64{1, 1, 1, 1}, []float64{1, 1, 1}, true, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ch.NumSprings() != 4 {
		t.Errorf("NumSprings = %d, want 4", ch.NumSprings())
	}
	if ch.NumMasses() != 3 {
		t.Errorf("NumMasses = %d, want 3", ch.NumMasses())
	}
}

func TestNew_EmptyLists(t *testing.T) {
	if _, err := New(nil, []float64{1}, false, false); !errors.Is(err, ErrEmptyList) {
		t.Errorf("expected ErrEmptyList for springs, got %v", err)
	}
	if _, err := New([]float64{1}, nil, false, false); !errors.Is(err, ErrEmptyList) {
		t.Errorf("expected ErrEmptyList for masses, got %v", err)
	}
}

func TestNew_ImproperSystem(t *testing.T) {
	// Top anchor and two inter-mass springs consume all three;
	// nothing left for the bottom anchor.
	_, err := New([]float64{1, 1, 1}, []float64{1, 1, 1}, true, true)
	if !errors.Is(err, ErrImproperSystem) {
		t.Fatalf("expected ErrImproperSystem, got %v", err)
	}

	// A fourth spring closes the system.
	if _, err := New([]float64{1, 1, 1, 1}, []float64{1, 1, 1}, true, true); err != nil {
		t.Errorf("closed system should be valid, got %v", err)
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		springs int
		masses  int
		want    int
	}{
		{4, 3, -1},
		{3, 3, -1},
		{2, 3, 0},
		{1, 4, 0},
	}

	for _, tt := range tests {
		constants := make([]float64, tt.springs)
		masses := make([]float64, tt.masses)
		for i := range constants {
			constants[i] = 1
		}
		for i := range masses {
			masses[i] = 1
		}

		ch, err := New(constants, masses, false, false)
		if err != nil {
			t.Fatalf("New(%d springs, %d masses): %v", tt.springs, tt.masses, err)
		}
		if got := ch.Shift(); got != tt.want {
			t.Errorf("Shift(%d springs, %d masses) = %d, want %d",
				tt.springs, tt.masses, got, tt.want)
		}
	}
}

func TestValidateCounts(t *testing.T) {
	ch, err := New([]float64{1, 1, 1, 1}, []float64{1, 1, 1}, true, false)
	if err != nil {
		t.Fatal(err)
	}

	if err := ch.ValidateCounts(4, 3); err != nil {
		t.Errorf("matching counts should pass, got %v", err)
	}
	if err := ch.ValidateCounts(-1, -1); err != nil {
		t.Errorf("unset counts should pass, got %v", err)
	}
	if err := ch.ValidateCounts(5, 3); !errors.Is(err, ErrCountMismatch) {
		t.Errorf("expected ErrCountMismatch for springs, got %v", err)
	}
	if err := ch.ValidateCounts(4, 2); !errors.Is(err, ErrCountMismatch) {
		t.Errorf("expected ErrCountMismatch for masses, got %v", err)
	}
}

func TestSpringSurplus(t *testing.T) {
	ch, err := New([]float64{1, 1, 1, 1}, []float64{1, 1, 1}, true, true)
	if err != nil {
		t.Fatal(err)
	}
	if got := ch.SpringSurplus(); got != 1 {
		t.Errorf("SpringSurplus = %d, want 1", got)
	}
}
