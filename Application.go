package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell"

	"github.com/AditFrenchCrop/pingpong/core"
	"github.com/AditFrenchCrop/pingpong/logger"
	"github.com/AditFrenchCrop/pingpong/sound"
)

const FrameInterval = 16 * time.Millisecond // 約60fps

func main() {
	logger.Log.Init()

	settings, err := core.ReadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Log.Info(fmt.Sprintf(logger.SettingsLoadedMsg,
		settings.Theme.Name, settings.SfxEnabled, settings.MusicEnabled, settings.Volume))

	screen := initScreen(settings.Theme)
	defer screen.Fini()

	player := sound.NewPlayer(settings)
	player.Init()
	defer player.Close()

	game := core.NewGame(player, time.Now().UnixNano())
	startGameLoop(screen, game, settings, player)
}

func initScreen(theme core.Theme) tcell.Screen {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if e := screen.Init(); e != nil {
		logger.Log.Error(logger.ScreenInitFailedMsg)
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(1)
	}

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.NewHexColor(theme.Background)).
		Foreground(tcell.NewHexColor(theme.Foreground)))
	return screen
}

// startGameLoop 唯一會改動遊戲狀態的loop
// 每一輪先消化按鍵事件 再跑一幀(只有Playing會有效果) 畫完畫面睡一個frame
func startGameLoop(screen tcell.Screen, game *core.Game, settings *core.Settings, player *sound.Player) {
	eventChan := initUserInput(screen)

	for {
	drain:
		for {
			select {
			case ev := <-eventChan:
				if handleKeyEvent(ev, game, settings, player) {
					return
				}
			default:
				break drain
			}
		}

		game.Frame()
		drawView(screen, game, settings.Theme)
		time.Sleep(FrameInterval)
	}
}

// initUserInput 開一個goroutine監聽鍵盤事件丟回channel
// 事件本身不動遊戲狀態 由main loop自己消化
func initUserInput(screen tcell.Screen) chan *tcell.EventKey {
	eventChan := make(chan *tcell.EventKey, 16)

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				eventChan <- ev
			}
		}
	}()

	return eventChan
}
