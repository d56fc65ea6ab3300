package notifications

import "testing"

func TestState_AddAndClearLevel(t *testing.T) {
	s := NewState()
	if s.HasAny() {
		t.Fatal("new state should be empty")
	}

	s.Add(LevelWarning, "drops disabled")
	s.Add(LevelError, "write failed")
	s.Add(LevelError, "write failed again")

	if got := len(s.All()); got != 3 {
		t.Fatalf("Expected 3 notifications, got %d", got)
	}

	s.ClearLevel(LevelError)
	all := s.All()
	if len(all) != 1 || all[0].Level != LevelWarning {
		t.Errorf("Expected only the warning to remain, got %+v", all)
	}
}

func TestState_Drain(t *testing.T) {
	s := NewState()
	s.Add(LevelInfo, "hello")

	drained := s.Drain()
	if len(drained) != 1 || drained[0].Message != "hello" {
		t.Errorf("unexpected drain result %+v", drained)
	}
	if s.HasAny() {
		t.Error("state should be empty after drain")
	}
}

func TestLevel_String(t *testing.T) {
	tests := map[Level]string{LevelInfo: "info", LevelWarning: "warning", LevelError: "error"}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
