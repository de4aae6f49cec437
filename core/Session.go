package core

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseControlsShown
	PhasePlaying
	PhasePaused
	PhaseSettingsOpen
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseControlsShown:
		return "ControlsShown"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseSettingsOpen:
		return "SettingsOpen"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Intent 外部送進來的指令 不認識的組合一律當沒看到
type Intent int

const (
	IntentStart Intent = iota
	IntentConfirmStart
	IntentPause
	IntentResume
	IntentOpenSettings
	IntentCloseSettings
	IntentQuit
	IntentPlayAgain
)

type Session struct {
	Phase  Phase
	Winner Side
}

func NewSession() *Session {
	return &Session{Phase: PhaseIdle}
}

// Apply 依照目前Phase處理指令 回傳有沒有發生轉換
// 不合法的指令是no-op 不會報錯
func (s *Session) Apply(intent Intent) bool {
	switch s.Phase {

	case PhaseIdle:
		if intent == IntentStart {
			s.Phase = PhaseControlsShown
			return true
		}

	case PhaseControlsShown:
		if intent == IntentConfirmStart {
			s.Phase = PhasePlaying
			s.Winner = NoSide
			return true
		}

	case PhasePlaying:
		if intent == IntentPause {
			s.Phase = PhasePaused
			return true
		}

	case PhasePaused:
		switch intent {
		case IntentResume:
			s.Phase = PhasePlaying
			return true
		case IntentOpenSettings:
			s.Phase = PhaseSettingsOpen
			return true
		case IntentQuit:
			s.Phase = PhaseIdle
			s.Winner = NoSide
			return true
		}

	case PhaseSettingsOpen:
		if intent == IntentCloseSettings {
			s.Phase = PhasePaused
			return true
		}

	case PhaseGameOver:
		if intent == IntentPlayAgain {
			s.Phase = PhasePlaying
			s.Winner = NoSide
			return true
		}
	}
	return false
}

// EndMatch 比賽分出勝負 由記分那邊觸發 是離開Playing唯一的內部途徑
func (s *Session) EndMatch(winner Side) {
	if s.Phase != PhasePlaying {
		return
	}
	s.Winner = winner
	s.Phase = PhaseGameOver
}
