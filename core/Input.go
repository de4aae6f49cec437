package core

// InputState 記錄目前按住的按鍵 固定只追蹤這四個
// 按鍵事件只寫這些flag 不會直接動到遊戲狀態
type InputState struct {
	P1Up, P1Down bool
	P2Up, P2Down bool
}

// Sample 取出當下的按鍵狀態後歸零
// terminal沒有key-up事件 靠鍵盤auto-repeat補上連續移動
func (in *InputState) Sample() InputState {
	sampled := *in
	*in = InputState{}
	return sampled
}
