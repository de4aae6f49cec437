package main

import (
	"fmt"

	"github.com/gdamore/tcell"

	"github.com/AditFrenchCrop/pingpong/core"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號

// digitCells 3x5的數字字型 畫分數用
var digitCells = map[rune][5]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" #", " #", " #", " #", " #"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
}

func drawView(screen tcell.Screen, game *core.Game, theme core.Theme) {
	bg := tcell.NewHexColor(theme.Background)
	fg := tcell.NewHexColor(theme.Foreground)
	accent := tcell.NewHexColor(theme.Accent)

	base := tcell.StyleDefault.Background(bg).Foreground(fg)
	highlight := tcell.StyleDefault.Background(bg).Foreground(accent)

	screen.Fill(' ', base)

	switch game.Session.Phase {

	case core.PhaseIdle:
		drawCenteredText(screen, -2, highlight, "P I N G   P O N G")
		drawCenteredText(screen, 0, base, "Enter - start")
		drawCenteredText(screen, 1, base, "Q / Esc - exit")

	case core.PhaseControlsShown:
		drawCenteredText(screen, -3, highlight, "CONTROLS")
		drawCenteredText(screen, -1, base, "Player 1:  W / S")
		drawCenteredText(screen, 0, base, "Player 2:  Up / Down")
		drawCenteredText(screen, 1, base, "Esc - pause")
		drawCenteredText(screen, 3, highlight, "Enter - play")

	case core.PhasePlaying:
		drawField(screen, game, base, highlight)

	case core.PhasePaused:
		drawField(screen, game, base, highlight)
		drawCenteredText(screen, -1, highlight, "PAUSED")
		drawCenteredText(screen, 1, base, "Enter - resume   O - settings   Q - quit")

	case core.PhaseSettingsOpen:
		drawCenteredText(screen, -3, highlight, "SETTINGS")
		drawCenteredText(screen, -1, base, fmt.Sprintf("Theme: %s   (T to change)", theme.Name))
		drawCenteredText(screen, 1, base, "+ / - volume")
		drawCenteredText(screen, 3, base, "Esc - back")

	case core.PhaseGameOver:
		drawField(screen, game, base, highlight)
		drawCenteredText(screen, -1, highlight, fmt.Sprintf("%s WINS!", game.Session.Winner))
		drawCenteredText(screen, 1, base, "Enter - play again")
	}

	screen.Show()
}

// drawField 把邏輯座標(800x600)投影到terminal的格子上
func drawField(screen tcell.Screen, game *core.Game, base, highlight tcell.Style) {
	width, height := screen.Size()
	sx := float64(width) / core.FieldWidth
	sy := float64(height) / core.FieldHeight

	// 中線
	for row := 0; row < height; row += 2 {
		screen.SetContent(width/2, row, 0x2502, nil, base)
	}

	// 粒子畫在球拍下面 生命值越低越暗
	for _, p := range game.Particles.Particles {
		symbol := '·'
		if p.Life > 0.5 {
			symbol = '•'
		}
		screen.SetContent(int(p.X*sx), int(p.Y*sy), symbol, nil, highlight)
	}

	// 兩個球拍
	paddleRows := int(core.PaddleHeight * sy)
	if paddleRows < 1 {
		paddleRows = 1
	}
	drawPaddle(screen, int(core.PaddleGap*sx), int(game.Player1.Y*sy), paddleRows, base)
	drawPaddle(screen, width-1-int(core.PaddleGap*sx), int(game.Player2.Y*sy), paddleRows, base)

	// 球
	screen.SetContent(int(game.Ball.X*sx), int(game.Ball.Y*sy), BallSymbol, nil, highlight)

	// 分數
	drawDigits(screen, width/4, 1, fmt.Sprintf("%d", game.Score.Player1), base)
	drawDigits(screen, (width/4)*3, 1, fmt.Sprintf("%d", game.Score.Player2), base)
}

func drawPaddle(screen tcell.Screen, col, row, rows int, style tcell.Style) {
	for r := 0; r < rows; r++ {
		screen.SetContent(col, row+r, PaddleSymbol, nil, style)
	}
}

// drawDigits 用3x5字型畫數字 x是整串數字的中心
func drawDigits(screen tcell.Screen, x, y int, number string, style tcell.Style) {
	totalWidth := len(number)*4 - 1
	startX := x - totalWidth/2

	for i, digit := range number {
		cells, ok := digitCells[digit]
		if !ok {
			continue
		}
		offsetX := startX + i*4
		for row, line := range cells {
			for col, c := range line {
				if c == '#' {
					screen.SetContent(offsetX+col, y+row, PaddleSymbol, nil, style)
				}
			}
		}
	}
}

// drawCenteredText 以畫面中央為基準畫一行字 offsetY是相對中央的行數
func drawCenteredText(screen tcell.Screen, offsetY int, style tcell.Style, text string) {
	width, height := screen.Size()
	startX := width/2 - len(text)/2
	row := height/2 + offsetY
	for i, c := range text {
		screen.SetContent(startX+i, row, c, nil, style)
	}
}
