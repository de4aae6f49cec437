package core

import "fmt"

// Theme 固定的三色主題 顏色用0xRRGGBB表示
// 讀設定檔時就檢查完 畫面那邊不再查表
type Theme struct {
	Name       string
	Background int32
	Foreground int32
	Accent     int32
}

var ThemeClassic = Theme{Name: "classic", Background: 0x000000, Foreground: 0xFFFFFF, Accent: 0xFFD700}
var ThemeNeon = Theme{Name: "neon", Background: 0x0A0A0A, Foreground: 0x39FF14, Accent: 0xFF00FF}
var ThemeOcean = Theme{Name: "ocean", Background: 0x001B33, Foreground: 0x66CCFF, Accent: 0xFFFFFF}

func ThemeByName(name string) (Theme, error) {
	switch name {
	case ThemeClassic.Name:
		return ThemeClassic, nil
	case ThemeNeon.Name:
		return ThemeNeon, nil
	case ThemeOcean.Name:
		return ThemeOcean, nil
	}
	return Theme{}, fmt.Errorf("unknown theme: %s", name)
}
