package engine

import (
	"testing"
	"time"
)

func TestNewResultSummarizesGame(t *testing.T) {
	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	g := NewGame("g", 9, 9, 10, start)
	g.IsGameOver = true
	g.Won = true

	r := NewResult(g, "ann", start.Add(95*time.Second))

	if r.Player != "ann" || r.Rows != 9 || r.Cols != 9 || r.Mines != 10 || !r.Won {
		t.Errorf("unexpected result: %+v", r)
	}
	if r.DurationSeconds != 95 {
		t.Errorf("DurationSeconds = %d, want 95", r.DurationSeconds)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestResultValidate(t *testing.T) {
	tests := []struct {
		name  string
		r     Result
		valid bool
	}{
		{"ok", Result{Player: "a", Rows: 1, Cols: 1}, true},
		{"no player", Result{Player: " ", Rows: 1, Cols: 1}, false},
		{"no rows", Result{Player: "a", Cols: 1}, false},
		{"negative mines", Result{Player: "a", Rows: 1, Cols: 1, Mines: -1}, false},
		{"negative duration", Result{Player: "a", Rows: 1, Cols: 1, DurationSeconds: -5}, false},
	}

	for _, tt := range tests {
		err := tt.r.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
