package host

import "testing"

func TestPriorityBands(t *testing.T) {
	tests := []struct {
		p         Priority
		canServe  bool
		overrides bool
		str       string
	}{
		{Unable, false, false, "Unable"},
		{-3, false, false, "Unable"},
		{1, true, false, "1"},
		{StandardPriority, true, false, "100"},
		{101, true, true, "101"},
		{999, true, true, "999"},
	}

	for _, tt := range tests {
		if got := tt.p.CanServe(); got != tt.canServe {
			t.Errorf("Priority(%d).CanServe() = %v, want %v", tt.p, got, tt.canServe)
		}
		if got := tt.p.Overrides(); got != tt.overrides {
			t.Errorf("Priority(%d).Overrides() = %v, want %v", tt.p, got, tt.overrides)
		}
		if got := tt.p.String(); got != tt.str {
			t.Errorf("Priority(%d).String() = %q, want %q", tt.p, got, tt.str)
		}
	}
}
