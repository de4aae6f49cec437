package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone 正弦波加上簡單的attack/release包絡 避免爆音
type tone struct {
	freq    float64
	pos     int
	total   int
	attack  int
	release int
}

func newTone(freq float64, duration time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	edge := sampleRate.N(5 * time.Millisecond)
	return &tone{
		freq:    freq,
		total:   total,
		attack:  edge,
		release: edge,
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}

	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}

		v := math.Sin(2 * math.Pi * t.freq * float64(t.pos) / float64(sampleRate))

		// 包絡
		if t.pos < t.attack {
			v *= float64(t.pos) / float64(t.attack)
		}
		if remain := t.total - t.pos; remain < t.release {
			v *= float64(remain) / float64(t.release)
		}

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error {
	return nil
}

// melody 固定音序無限循環 當背景音樂用
type melody struct {
	notes   []float64
	noteLen int
	pos     int
}

func newMelody() beep.Streamer {
	return &melody{
		notes:   []float64{262, 330, 392, 330, 294, 349, 440, 349},
		noteLen: sampleRate.N(300 * time.Millisecond),
	}
}

func (m *melody) Stream(samples [][2]float64) (int, bool) {
	span := m.noteLen * len(m.notes)
	for i := range samples {
		idx := (m.pos / m.noteLen) % len(m.notes)
		freq := m.notes[idx]
		v := 0.4 * math.Sin(2*math.Pi*freq*float64(m.pos%m.noteLen)/float64(sampleRate))

		// 每個音開頭結尾淡入淡出
		inNote := m.pos % m.noteLen
		edge := m.noteLen / 20
		if inNote < edge {
			v *= float64(inNote) / float64(edge)
		}
		if remain := m.noteLen - inNote; remain < edge {
			v *= float64(remain) / float64(edge)
		}

		samples[i][0] = v
		samples[i][1] = v
		m.pos = (m.pos + 1) % span
	}
	return len(samples), true
}

func (m *melody) Err() error {
	return nil
}
