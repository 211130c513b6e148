// README: State machine tests for the transition table (no database).
package trip

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		// happy-path forward transitions
		{StatusRequested, StatusAccepted, true},
		{StatusScheduled, StatusAccepted, true},
		{StatusAccepted, StatusArrived, true},
		{StatusAccepted, StatusOngoing, true},
		{StatusArrived, StatusOngoing, true},
		{StatusAccepted, StatusCompleted, true},
		{StatusOngoing, StatusCompleted, true},
		// reject only from Requested
		{StatusRequested, StatusRejected, true},
		{StatusScheduled, StatusRejected, false},
		{StatusAccepted, StatusRejected, false},
		// cancel from every non-terminal state
		{StatusRequested, StatusCancelled, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusAccepted, StatusCancelled, true},
		{StatusArrived, StatusCancelled, true},
		{StatusOngoing, StatusCancelled, true},
		// invalid: terminal states have no outgoing transitions
		{StatusCompleted, StatusOngoing, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusAccepted, false},
		{StatusRejected, StatusRequested, false},
		// invalid: skipping states
		{StatusRequested, StatusOngoing, false},
		{StatusRequested, StatusCompleted, false},
		{StatusScheduled, StatusOngoing, false},
		{StatusArrived, StatusCompleted, false},
	}
	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		if got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []Status{StatusCompleted, StatusCancelled, StatusRejected}
	for _, s := range terminal {
		if !IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = false", s)
		}
	}
	for _, s := range NonTerminalStatuses() {
		if IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = true", s)
		}
	}
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateCode()
		if len(code) != len("MW-")+codeLength {
			t.Fatalf("unexpected code length: %q", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code generated: %q", code)
		}
		seen[code] = true
	}
}
