package core

type SoundEvent int

const (
	SoundWallHit SoundEvent = iota
	SoundPaddleHit
	SoundScore
)

// Crossing 球的前緣越過左右邊界 代表有人得分
type Crossing int

const (
	CrossedNone Crossing = iota
	CrossedLeft
	CrossedRight
)

const WallBurstCount = 10
const PaddleBurstCount = 15

type Burst struct {
	X, Y  float64
	Count int
}

// FrameEffects 這一幀物理運算產生的副作用(音效與粒子)
type FrameEffects struct {
	Sounds []SoundEvent
	Bursts []Burst
}

// UpdatePhysics 移動球拍與球 並處理碰撞
// 得分的越界不在這裡處理 回傳給記分的人處理
func UpdatePhysics(ball *Ball, player1, player2 *Paddle, in InputState) (Crossing, FrameEffects) {
	var fx FrameEffects

	// 兩個球拍 超出邊界會被夾住不會報錯
	if in.P1Up {
		player1.MoveUp()
	}
	if in.P1Down {
		player1.MoveDown()
	}
	if in.P2Up {
		player2.MoveUp()
	}
	if in.P2Down {
		player2.MoveDown()
	}

	// 球 一幀走一步
	ball.X += ball.Dx
	ball.Y += ball.Dy

	// 檢查有沒有撞到上下牆壁 同一幀只會翻轉一次
	if (ball.Y-BallRadius <= 0 && ball.Dy < 0) ||
		(ball.Y+BallRadius >= FieldHeight && ball.Dy > 0) {
		ball.Dy = -ball.Dy
		fx.Sounds = append(fx.Sounds, SoundWallHit)
		fx.Bursts = append(fx.Bursts, Burst{X: ball.X, Y: ball.Y, Count: WallBurstCount})
	}

	// 檢查是否有碰到球拍 兩邊各自判斷
	if touchLeftPaddle(ball, player1) || touchRightPaddle(ball, player2) {
		ball.Dx = -ball.Dx
		fx.Sounds = append(fx.Sounds, SoundPaddleHit)
		fx.Bursts = append(fx.Bursts, Burst{X: ball.X, Y: ball.Y, Count: PaddleBurstCount})
	}

	if ball.X-BallRadius < 0 {
		return CrossedLeft, fx
	}
	if ball.X+BallRadius > FieldWidth {
		return CrossedRight, fx
	}
	return CrossedNone, fx
}

func touchLeftPaddle(ball *Ball, paddle *Paddle) bool {
	return ball.Dx < 0 &&
		ball.X-BallRadius <= PaddleGap+PaddleWidth &&
		ball.X+BallRadius >= PaddleGap &&
		ball.Y >= paddle.Y && ball.Y <= paddle.Y+PaddleHeight
}

func touchRightPaddle(ball *Ball, paddle *Paddle) bool {
	return ball.Dx > 0 &&
		ball.X+BallRadius >= FieldWidth-PaddleGap-PaddleWidth &&
		ball.X-BallRadius <= FieldWidth-PaddleGap &&
		ball.Y >= paddle.Y && ball.Y <= paddle.Y+PaddleHeight
}
