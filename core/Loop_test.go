package core

import "testing"

// soundRecorder 測試用的音效接收端
type soundRecorder struct {
	events []SoundEvent
}

func (r *soundRecorder) Notify(event SoundEvent) {
	r.events = append(r.events, event)
}

func (r *soundRecorder) count(event SoundEvent) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func startPlaying(g *Game) {
	g.Handle(IntentStart)
	g.Handle(IntentConfirmStart)
}

func TestFrameOnlyRunsWhilePlaying(t *testing.T) {
	for _, phase := range []Phase{PhaseIdle, PhaseControlsShown, PhasePaused, PhaseSettingsOpen, PhaseGameOver} {
		g := NewGame(nil, 1)
		g.Session.Phase = phase
		g.Particles.Spawn(10, 10, 5)
		x, y := g.Ball.X, g.Ball.Y
		life := g.Particles.Particles[0].Life

		g.Frame()

		if g.Ball.X != x || g.Ball.Y != y {
			t.Errorf("phase %v: ball moved while suspended", phase)
		}
		if g.Particles.Particles[0].Life != life {
			t.Errorf("phase %v: particles advanced while suspended", phase)
		}
	}
}

func TestPauseSuspendsAndResumeContinues(t *testing.T) {
	g := NewGame(nil, 1)
	startPlaying(g)
	g.Frame()
	x, y := g.Ball.X, g.Ball.Y

	g.Handle(IntentPause)
	for i := 0; i < 10; i++ {
		g.Frame()
	}
	if g.Ball.X != x || g.Ball.Y != y {
		t.Fatalf("ball moved while paused")
	}

	// 恢復後從暫停當下的狀態繼續 不補跑中間的幀
	g.Handle(IntentResume)
	g.Frame()
	if g.Ball.X != x+g.Ball.Dx || g.Ball.Y != y+g.Ball.Dy {
		t.Errorf("expected exactly one step after resume, got (%f, %f)", g.Ball.X, g.Ball.Y)
	}
}

func TestCrossingScenarioFromCenter(t *testing.T) {
	recorder := &soundRecorder{}
	g := NewGame(recorder, 1)
	startPlaying(g)

	// 球拍移開 讓球直接出左邊界
	g.Player1.Y = 0
	g.Ball.X = BallRadius + 0.1
	g.Ball.Y = FieldHeight / 2
	g.Ball.Dx = -BallSpeed

	g.Frame()

	if g.Score.Player2 != 1 || g.Score.Player1 != 0 {
		t.Errorf("expected score 0:1, got %d:%d", g.Score.Player1, g.Score.Player2)
	}
	if g.Ball.X != FieldWidth/2 || g.Ball.Y != FieldHeight/2 {
		t.Errorf("expected ball at center, got (%f, %f)", g.Ball.X, g.Ball.Y)
	}
	if g.Ball.Dx != -BallSpeed || g.Ball.Dy != BallSpeed {
		t.Errorf("expected velocity (%f, %f), got (%f, %f)", -BallSpeed, BallSpeed, g.Ball.Dx, g.Ball.Dy)
	}
	if recorder.count(SoundScore) != 1 {
		t.Errorf("expected one score sound, got %d", recorder.count(SoundScore))
	}

	// 接下來的幀不會重複計分
	for i := 0; i < 10; i++ {
		g.Frame()
	}
	if g.Score.Player2 != 1 {
		t.Errorf("crossing scored more than once: %d", g.Score.Player2)
	}
}

func TestFifteenthPointEndsMatch(t *testing.T) {
	recorder := &soundRecorder{}
	g := NewGame(recorder, 1)
	startPlaying(g)

	g.Score.Player1 = WinningScore - 1
	g.Player2.Y = 0
	g.Ball.X = FieldWidth - BallRadius - 0.1
	g.Ball.Y = FieldHeight / 2
	g.Ball.Dx = BallSpeed

	g.Frame()

	if g.Session.Phase != PhaseGameOver {
		t.Fatalf("expected GameOver, got %v", g.Session.Phase)
	}
	if g.Session.Winner != SidePlayer1 {
		t.Errorf("expected winner Player 1, got %v", g.Session.Winner)
	}
	if g.Session.Winner.String() != "Player 1" {
		t.Errorf("expected winner name Player 1, got %s", g.Session.Winner)
	}

	// 分出勝負後frame loop停止 狀態凍結
	x, score := g.Ball.X, g.Score.Player1
	for i := 0; i < 10; i++ {
		g.Frame()
	}
	if g.Ball.X != x || g.Score.Player1 != score {
		t.Errorf("state changed after game over")
	}
}

func TestQuitResetsScoresAndWinner(t *testing.T) {
	g := NewGame(nil, 1)
	startPlaying(g)
	g.Score.Player1 = 3
	g.Score.Player2 = 5

	g.Handle(IntentPause)
	g.Handle(IntentQuit)

	if g.Session.Phase != PhaseIdle {
		t.Errorf("expected Idle, got %v", g.Session.Phase)
	}
	if g.Score.Player1 != 0 || g.Score.Player2 != 0 {
		t.Errorf("expected scores reset, got %d:%d", g.Score.Player1, g.Score.Player2)
	}
	if g.Session.Winner != NoSide {
		t.Errorf("expected winner cleared, got %v", g.Session.Winner)
	}
}

func TestPlayAgainResetsMatch(t *testing.T) {
	g := NewGame(nil, 1)
	startPlaying(g)
	g.Score.Player1 = WinningScore
	g.Session.EndMatch(SidePlayer1)
	g.Particles.Spawn(10, 10, 5)

	g.Handle(IntentPlayAgain)

	if g.Session.Phase != PhasePlaying {
		t.Errorf("expected Playing, got %v", g.Session.Phase)
	}
	if g.Score.Player1 != 0 || g.Score.Player2 != 0 {
		t.Errorf("expected scores reset, got %d:%d", g.Score.Player1, g.Score.Player2)
	}
	if g.Session.Winner != NoSide {
		t.Errorf("expected winner cleared, got %v", g.Session.Winner)
	}
	if g.Particles.Count() != 0 {
		t.Errorf("expected particles cleared, got %d", g.Particles.Count())
	}
}

func TestBurstsFeedParticleSystem(t *testing.T) {
	g := NewGame(nil, 1)
	startPlaying(g)

	// 下一幀撞上牆壁
	g.Ball.Y = BallRadius + 0.1
	g.Ball.Dy = -BallSpeed

	g.Frame()

	// 牆壁爆出10顆 同一幀advance過一次
	if g.Particles.Count() != WallBurstCount {
		t.Errorf("expected %d particles, got %d", WallBurstCount, g.Particles.Count())
	}
	for _, p := range g.Particles.Particles {
		if p.Life >= 1.0 {
			t.Errorf("expected particles advanced once this frame, life %f", p.Life)
		}
	}
}

func TestInputSampledOncePerFrame(t *testing.T) {
	g := NewGame(nil, 1)
	startPlaying(g)
	startY := g.Player1.Y

	g.Input.P1Up = true
	g.Frame()
	g.Frame() // flag已被取樣清掉 第二幀不再移動

	if g.Player1.Y != startY-PaddleSpeed {
		t.Errorf("expected single paddle step, got %f", startY-g.Player1.Y)
	}
}
