package core

import "testing"

func TestSessionTransitionTable(t *testing.T) {
	tests := []struct {
		name     string
		from     Phase
		intent   Intent
		expected Phase
		changed  bool
	}{
		{"idle start", PhaseIdle, IntentStart, PhaseControlsShown, true},
		{"controls confirm", PhaseControlsShown, IntentConfirmStart, PhasePlaying, true},
		{"playing pause", PhasePlaying, IntentPause, PhasePaused, true},
		{"paused resume", PhasePaused, IntentResume, PhasePlaying, true},
		{"paused open settings", PhasePaused, IntentOpenSettings, PhaseSettingsOpen, true},
		{"settings close", PhaseSettingsOpen, IntentCloseSettings, PhasePaused, true},
		{"paused quit", PhasePaused, IntentQuit, PhaseIdle, true},
		{"game over play again", PhaseGameOver, IntentPlayAgain, PhasePlaying, true},

		// 不合法的指令是no-op
		{"idle resume", PhaseIdle, IntentResume, PhaseIdle, false},
		{"idle pause", PhaseIdle, IntentPause, PhaseIdle, false},
		{"playing start", PhasePlaying, IntentStart, PhasePlaying, false},
		{"playing open settings", PhasePlaying, IntentOpenSettings, PhasePlaying, false},
		{"controls pause", PhaseControlsShown, IntentPause, PhaseControlsShown, false},
		{"settings quit", PhaseSettingsOpen, IntentQuit, PhaseSettingsOpen, false},
		{"game over resume", PhaseGameOver, IntentResume, PhaseGameOver, false},
	}

	for _, tt := range tests {
		session := &Session{Phase: tt.from}
		changed := session.Apply(tt.intent)
		if changed != tt.changed {
			t.Errorf("%s: expected changed=%t, got %t", tt.name, tt.changed, changed)
		}
		if session.Phase != tt.expected {
			t.Errorf("%s: expected phase %v, got %v", tt.name, tt.expected, session.Phase)
		}
	}
}

func TestConfirmStartClearsWinner(t *testing.T) {
	session := &Session{Phase: PhaseControlsShown, Winner: SidePlayer2}

	session.Apply(IntentConfirmStart)

	if session.Winner != NoSide {
		t.Errorf("expected winner cleared, got %v", session.Winner)
	}
}

func TestEndMatchOnlyFromPlaying(t *testing.T) {
	session := &Session{Phase: PhasePlaying}
	session.EndMatch(SidePlayer1)
	if session.Phase != PhaseGameOver || session.Winner != SidePlayer1 {
		t.Errorf("expected GameOver with Player 1, got %v / %v", session.Phase, session.Winner)
	}

	session = &Session{Phase: PhasePaused}
	session.EndMatch(SidePlayer1)
	if session.Phase != PhasePaused || session.Winner != NoSide {
		t.Errorf("expected no effect outside Playing, got %v / %v", session.Phase, session.Winner)
	}
}
