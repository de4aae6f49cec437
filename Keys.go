package main

import (
	"github.com/gdamore/tcell"

	"github.com/AditFrenchCrop/pingpong/core"
	"github.com/AditFrenchCrop/pingpong/sound"
)

// handleKeyEvent 把按鍵翻譯成移動flag或指令 回傳true代表整個程式要結束
// 不在追蹤清單裡的按鍵直接忽略
func handleKeyEvent(ev *tcell.EventKey, game *core.Game, settings *core.Settings, player *sound.Player) bool {
	name := ev.Name()

	// Ctrl-C 不管在哪個狀態都直接離開
	if name == "Ctrl-C" {
		return true
	}

	switch game.Session.Phase {

	case core.PhaseIdle:
		switch name {
		case "Enter":
			game.Handle(core.IntentStart)
		case "Rune[q]", "Esc":
			return true
		}

	case core.PhaseControlsShown:
		if name == "Enter" {
			game.Handle(core.IntentConfirmStart)
		}

	case core.PhasePlaying:
		switch name {
		// 移動鍵只寫flag 等下一幀取樣
		case "Rune[w]":
			game.Input.P1Up = true
		case "Rune[s]":
			game.Input.P1Down = true
		case "Up":
			game.Input.P2Up = true
		case "Down":
			game.Input.P2Down = true
		// 中斷鍵獨立處理 跟移動flag無關
		case "Esc":
			game.Handle(core.IntentPause)
		}

	case core.PhasePaused:
		switch name {
		case "Enter", "Esc":
			game.Handle(core.IntentResume)
		case "Rune[o]":
			game.Handle(core.IntentOpenSettings)
		case "Rune[q]":
			game.Handle(core.IntentQuit)
		}

	case core.PhaseSettingsOpen:
		switch name {
		case "Esc":
			game.Handle(core.IntentCloseSettings)
		case "Rune[t]":
			settings.Theme = core.NextTheme(settings.Theme)
		case "Rune[+]", "Rune[=]":
			settings.Volume = clampVolume(settings.Volume + 0.1)
			player.SetVolume(settings.Volume)
		case "Rune[-]":
			settings.Volume = clampVolume(settings.Volume - 0.1)
			player.SetVolume(settings.Volume)
		}

	case core.PhaseGameOver:
		if name == "Enter" {
			game.Handle(core.IntentPlayAgain)
		}
	}

	return false
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
