package lottery

type PlayRequest struct {
	UserID string
	Bet    int64
}

type Result struct {
	Numbers []int `json:"numbers"`
	Win     bool  `json:"win"`
	Coin    int64 `json:"coin"`
}
