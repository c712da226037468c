package lottery

// RejectionError is a validation outcome, not a server fault: the bet
// was refused before any state changed, and Balance carries the
// untouched balance for the response body.
type RejectionError struct {
	Reason  string
	Balance int64
}

func (e *RejectionError) Error() string {
	return e.Reason
}

const (
	reasonInvalidBet        = "bet must be greater than zero"
	reasonInsufficientFunds = "insufficient balance"
)
