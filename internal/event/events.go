package event

const (
	EventWagerSettled    = "wager.settled"
	EventBalanceAdjusted = "balance.adjusted"
)
