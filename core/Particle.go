package core

import (
	"math/rand"
)

const MaxParticles = 512
const ParticleDecay = 0.02   // 每幀扣掉的生命值
const ParticleMaxSpeed = 2.0 // 初速度每軸落在[-2,2]

type Particle struct {
	X, Y   float64
	Dx, Dy float64
	Life   float64 // 從1.0開始遞減 歸零就移除
}

type ParticleSystem struct {
	Particles []Particle
	rng       *rand.Rand
}

func NewParticleSystem(seed int64) *ParticleSystem {
	return &ParticleSystem{
		Particles: make([]Particle, 0, MaxParticles),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Spawn 在同一個位置一次噴出count個粒子
func (ps *ParticleSystem) Spawn(x, y float64, count int) {
	for i := 0; i < count; i++ {
		if len(ps.Particles) >= MaxParticles {
			return
		}
		ps.Particles = append(ps.Particles, Particle{
			X:    x,
			Y:    y,
			Dx:   (ps.rng.Float64() - 0.5) * 2 * ParticleMaxSpeed,
			Dy:   (ps.rng.Float64() - 0.5) * 2 * ParticleMaxSpeed,
			Life: 1.0,
		})
	}
}

// Advance 每幀呼叫一次 移動粒子並清掉死掉的
func (ps *ParticleSystem) Advance() {
	alive := 0
	for i := range ps.Particles {
		p := &ps.Particles[i]
		p.X += p.Dx
		p.Y += p.Dy
		p.Life -= ParticleDecay
		if p.Life <= 0 {
			continue
		}
		ps.Particles[alive] = ps.Particles[i]
		alive++
	}
	ps.Particles = ps.Particles[:alive]
}

func (ps *ParticleSystem) Clear() {
	ps.Particles = ps.Particles[:0]
}

func (ps *ParticleSystem) Count() int {
	return len(ps.Particles)
}
