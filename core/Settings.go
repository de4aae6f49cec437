package core

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Settings 主題與音效設定 遊戲中只讀不寫
type Settings struct {
	Theme        Theme
	SfxEnabled   bool
	MusicEnabled bool
	Volume       float64 // 0.0 ~ 1.0
}

// ReadSettings 從settings.properties讀設定
// 檔案不存在就用預設值 主題名稱不認識直接回錯
func ReadSettings() (*Settings, error) {
	v := viper.New()
	v.SetConfigName("settings")
	v.SetConfigType("properties")
	v.AddConfigPath("./")

	v.SetDefault("theme", ThemeClassic.Name)
	v.SetDefault("sfxEnabled", true)
	v.SetDefault("musicEnabled", false)
	v.SetDefault("volume", 0.8)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	theme, err := ThemeByName(cast.ToString(v.Get("theme")))
	if err != nil {
		return nil, err
	}

	volume := cast.ToFloat64(v.Get("volume"))
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	return &Settings{
		Theme:        theme,
		SfxEnabled:   cast.ToBool(v.Get("sfxEnabled")),
		MusicEnabled: cast.ToBool(v.Get("musicEnabled")),
		Volume:       volume,
	}, nil
}

// NextTheme 設定畫面切主題用 依固定順序循環
func NextTheme(current Theme) Theme {
	switch current.Name {
	case ThemeClassic.Name:
		return ThemeNeon
	case ThemeNeon.Name:
		return ThemeOcean
	}
	return ThemeClassic
}
