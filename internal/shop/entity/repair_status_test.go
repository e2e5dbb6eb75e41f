package entity

import (
	"strings"
	"testing"
)

func TestParseRepairStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    RepairStatus
		wantErr bool
	}{
		{"Pending", StatusPending, false},
		{"Completed", StatusCompleted, false},
		{"Cannot Repair", StatusCannotRepair, false},
		{"Picked Up", StatusPickedUp, false},
		{"  Pending  ", StatusPending, false},
		{"pending", "", true},
		{"In Progress", "", true},
		{"Waiting for Parts", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRepairStatus(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRepairStatus(%q): expected error, got %q", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRepairStatus(%q): unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRepairStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestIsValidTransitionAgreesWithRank(t *testing.T) {
	// Pairwise check: a transition is valid exactly when both statuses are
	// known and the target rank is strictly greater.
	all := AllStatuses()
	for _, from := range all {
		for _, to := range all {
			fromRank, _ := from.Rank()
			toRank, _ := to.Rank()
			want := toRank > fromRank
			if got := IsValidTransition(from, to); got != want {
				t.Errorf("IsValidTransition(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestIsValidTransitionUnknownStatus(t *testing.T) {
	if IsValidTransition("Bogus", StatusCompleted) {
		t.Error("transition from unknown status should be invalid")
	}
	if IsValidTransition(StatusPending, "Bogus") {
		t.Error("transition to unknown status should be invalid")
	}
}

func TestTransitionSkippingAllowed(t *testing.T) {
	if !IsValidTransition(StatusPending, StatusPickedUp) {
		t.Error("skipping intermediate statuses should be allowed")
	}
	if !IsValidTransition(StatusPending, StatusCannotRepair) {
		t.Error("Pending -> Cannot Repair should be allowed")
	}
}

func TestNoOpAndBackwardRejected(t *testing.T) {
	for _, s := range AllStatuses() {
		if IsValidTransition(s, s) {
			t.Errorf("no-op transition %q -> %q should be rejected", s, s)
		}
	}
	if IsValidTransition(StatusCompleted, StatusPending) {
		t.Error("backward transition Completed -> Pending should be rejected")
	}
	if IsValidTransition(StatusPickedUp, StatusCannotRepair) {
		t.Error("backward transition Picked Up -> Cannot Repair should be rejected")
	}
}

func TestValidNextStatuses(t *testing.T) {
	next := ValidNextStatuses(StatusPending)
	want := []RepairStatus{StatusCompleted, StatusCannotRepair, StatusPickedUp}
	if len(next) != len(want) {
		t.Fatalf("ValidNextStatuses(Pending) = %v, want %v", next, want)
	}
	for i := range want {
		if next[i] != want[i] {
			t.Errorf("ValidNextStatuses(Pending)[%d] = %q, want %q", i, next[i], want[i])
		}
	}

	if got := ValidNextStatuses(StatusPickedUp); len(got) != 0 {
		t.Errorf("terminal status should have no next statuses, got %v", got)
	}

	// Unknown current yields the full ordered list, used only for the
	// initial status picker on a brand new order.
	if got := ValidNextStatuses(""); len(got) != len(AllStatuses()) {
		t.Errorf("unknown current should yield all statuses, got %v", got)
	}
}

func TestIsTerminal(t *testing.T) {
	if !StatusPickedUp.IsTerminal() {
		t.Error("Picked Up should be terminal")
	}
	for _, s := range []RepairStatus{StatusPending, StatusCompleted, StatusCannotRepair} {
		if s.IsTerminal() {
			t.Errorf("%q should not be terminal", s)
		}
	}
	if RepairStatus("Bogus").IsTerminal() {
		t.Error("unknown status should not be terminal")
	}
}

func TestExplainInvalidTransition(t *testing.T) {
	if msg := ExplainInvalidTransition(StatusPending, StatusCompleted); msg != "" {
		t.Errorf("valid transition should yield empty explanation, got %q", msg)
	}

	msg := ExplainInvalidTransition("Bogus", StatusCompleted)
	if !strings.Contains(msg, "current status") || !strings.Contains(msg, "Bogus") {
		t.Errorf("unexpected explanation for unknown current: %q", msg)
	}

	msg = ExplainInvalidTransition(StatusPending, "Bogus")
	if !strings.Contains(msg, "next status") || !strings.Contains(msg, "Bogus") {
		t.Errorf("unexpected explanation for unknown next: %q", msg)
	}

	msg = ExplainInvalidTransition(StatusCompleted, StatusPending)
	if !strings.Contains(msg, "backward or no-op") {
		t.Errorf("unexpected explanation for backward transition: %q", msg)
	}

	msg = ExplainInvalidTransition(StatusPending, StatusPending)
	if !strings.Contains(msg, "backward or no-op") {
		t.Errorf("unexpected explanation for no-op transition: %q", msg)
	}
}
