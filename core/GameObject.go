package core

const FieldWidth = 800.0  // 場地寬度(邏輯單位)
const FieldHeight = 600.0 // 場地高度(邏輯單位)

const BallRadius = 10.0
const BallSpeed = 0.3 // 每幀移動距離 大小固定不變

const PaddleWidth = 10.0
const PaddleHeight = 100.0
const PaddleSpeed = 1.5
const PaddleGap = 10.0 // 球拍與左右邊界的距離

const WinningScore = 15 // 遊戲結束分數

type GameObject struct {
	X, Y   float64
	Dx, Dy float64
}

type Ball struct {
	GameObject
}

// NewBall 球放到場地中央 水平方向由toLeft決定
func NewBall(toLeft bool) *Ball {
	dx := BallSpeed
	if toLeft {
		dx = -BallSpeed
	}
	return &Ball{GameObject{
		X: FieldWidth / 2, Y: FieldHeight / 2,
		Dx: dx, Dy: BallSpeed,
	}}
}

type Paddle struct {
	Y        float64
	NickName string
}

func NewPaddle(nickName string) *Paddle {
	return &Paddle{
		Y:        FieldHeight/2 - PaddleHeight/2,
		NickName: nickName,
	}
}

func (p *Paddle) MoveUp() {
	p.Y -= PaddleSpeed
	if p.Y < 0 {
		p.Y = 0
	}
}

func (p *Paddle) MoveDown() {
	p.Y += PaddleSpeed
	if p.Y > FieldHeight-PaddleHeight {
		p.Y = FieldHeight - PaddleHeight
	}
}

type Score struct {
	Player1 int
	Player2 int
}

func (s *Score) Reset() {
	s.Player1 = 0
	s.Player2 = 0
}
