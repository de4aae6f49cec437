package core

type Side int

const (
	NoSide Side = iota
	SidePlayer1
	SidePlayer2
)

func (s Side) String() string {
	switch s {
	case SidePlayer1:
		return "Player 1"
	case SidePlayer2:
		return "Player 2"
	}
	return ""
}

// ApplyCrossing 結算一次越界 幫對面加一分
// 回傳發給輸家方向的新球 同一幀就把球拉回場內 不會重複計分
func (s *Score) ApplyCrossing(crossing Crossing) *Ball {
	switch crossing {
	case CrossedLeft:
		s.Player2 += 1
		return NewBall(true)
	case CrossedRight:
		s.Player1 += 1
		return NewBall(false)
	}
	return nil
}

// Winner 先拿到WinningScore的一方 還沒分出勝負回傳NoSide
func (s *Score) Winner() Side {
	if s.Player1 >= WinningScore {
		return SidePlayer1
	}
	if s.Player2 >= WinningScore {
		return SidePlayer2
	}
	return NoSide
}
