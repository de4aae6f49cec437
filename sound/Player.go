package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/AditFrenchCrop/pingpong/core"
	"github.com/AditFrenchCrop/pingpong/logger"
)

const sampleRate = beep.SampleRate(44100)

// Player 用beep即時合成音效 不載入任何音檔
// 初始化失敗就進靜音模式 遊戲照常進行
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool

	sfxEnabled   bool
	musicEnabled bool
	volume       float64
}

func NewPlayer(settings *core.Settings) *Player {
	return &Player{
		mixer:        &beep.Mixer{},
		sfxEnabled:   settings.SfxEnabled,
		musicEnabled: settings.MusicEnabled,
		volume:       settings.Volume,
	}
}

// Init 開喇叭並掛上mixer 失敗只留log
func (p *Player) Init() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		logger.Log.ErrorWithDetail(logger.SoundInitFailedMsg, err)
		return
	}

	speaker.Play(p.mixer)
	p.initialized = true

	if p.musicEnabled {
		p.startMusic()
	}
}

// Close 停掉所有聲音
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Notify 實作core.SoundSink 射後不理
func (p *Player) Notify(event core.SoundEvent) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error(logger.SoundPlayFailedMsg)
		}
	}()

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.sfxEnabled {
		return
	}

	var s beep.Streamer
	switch event {
	case core.SoundWallHit:
		s = newTone(220, 60*time.Millisecond)
	case core.SoundPaddleHit:
		s = newTone(440, 60*time.Millisecond)
	case core.SoundScore:
		s = beep.Seq(newTone(660, 90*time.Millisecond), newTone(880, 120*time.Millisecond))
	default:
		return
	}

	speaker.Lock()
	p.mixer.Add(p.withVolume(s))
	speaker.Unlock()
}

// startMusic 無限循環的背景旋律 呼叫前要先持有p.mu
func (p *Player) startMusic() {
	p.music = &beep.Ctrl{Streamer: newMelody()}
	speaker.Lock()
	p.mixer.Add(p.withVolume(p.music))
	speaker.Unlock()
}

// SetVolume 設定畫面調整音量用 只影響之後播的音效
func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   (p.volume - 1) * 5,
		Silent:   p.volume <= 0,
	}
}
