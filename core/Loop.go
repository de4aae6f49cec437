package core

import (
	"fmt"

	"github.com/AditFrenchCrop/pingpong/logger"
)

// SoundSink 音效只管發出通知 播不播得出來不關模擬的事
type SoundSink interface {
	Notify(event SoundEvent)
}

// Game 一場遊戲的全部狀態 只在frame loop裡被改動
type Game struct {
	Ball      *Ball
	Player1   *Paddle
	Player2   *Paddle
	Score     *Score
	Particles *ParticleSystem
	Input     *InputState
	Session   *Session

	sound SoundSink
}

func NewGame(sound SoundSink, seed int64) *Game {
	return &Game{
		Ball:      NewBall(false),
		Player1:   NewPaddle("Player 1"),
		Player2:   NewPaddle("Player 2"),
		Score:     &Score{},
		Particles: NewParticleSystem(seed),
		Input:     &InputState{},
		Session:   NewSession(),
		sound:     sound,
	}
}

// Frame 跑一幀 固定順序 物理→計分→粒子
// 不在Playing就什麼都不做
func (g *Game) Frame() {
	if g.Session.Phase != PhasePlaying {
		return
	}

	in := g.Input.Sample()
	crossing, fx := UpdatePhysics(g.Ball, g.Player1, g.Player2, in)

	for _, s := range fx.Sounds {
		g.notify(s)
	}
	for _, b := range fx.Bursts {
		g.Particles.Spawn(b.X, b.Y, b.Count)
	}

	if crossing != CrossedNone {
		g.Ball = g.Score.ApplyCrossing(crossing)
		g.notify(SoundScore)

		if winner := g.Score.Winner(); winner != NoSide {
			g.Session.EndMatch(winner)
			logger.Log.Info(fmt.Sprintf(logger.MatchOverMsg, winner, g.Score.Player1, g.Score.Player2))
		}
	}

	g.Particles.Advance()
}

// Handle 處理外部指令 轉換成功才做對應的重置
func (g *Game) Handle(intent Intent) {
	before := g.Session.Phase
	if !g.Session.Apply(intent) {
		return
	}

	switch intent {
	case IntentConfirmStart, IntentPlayAgain:
		g.resetMatch()
		logger.Log.Info(logger.MatchStartMsg)
	case IntentQuit:
		g.resetMatch()
	}

	logger.Log.Debug(fmt.Sprintf(logger.PhaseChangedMsg, before, g.Session.Phase))
}

// resetMatch 分數歸零 球回中央 粒子清空
func (g *Game) resetMatch() {
	g.Score.Reset()
	g.Ball = NewBall(false)
	g.Player1.Y = FieldHeight/2 - PaddleHeight/2
	g.Player2.Y = FieldHeight/2 - PaddleHeight/2
	g.Particles.Clear()
	*g.Input = InputState{}
}

func (g *Game) notify(event SoundEvent) {
	if g.sound != nil {
		g.sound.Notify(event)
	}
}
