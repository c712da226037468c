package lottery

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"loto-platform/internal/event"
	"loto-platform/internal/history"
	"loto-platform/internal/monitoring"
)

const (
	drawCount = 6
	drawMax   = 90
	winChance = 0.3
)

type Wallet interface {
	GetOrCreate(userID string, defaultBalance int64) (int64, error)
	SetBalanceTx(tx *sql.Tx, userID string, coin int64) error
}

type History interface {
	AppendTx(tx *sql.Tx, e *history.Entry) error
}

type Service struct {
	db             *sql.DB
	wallet         Wallet
	history        History
	rng            RNG
	bus            *event.Bus
	log            *zap.Logger
	defaultBalance int64
}

func New(db *sql.DB, wallet Wallet, hist History, rng RNG, bus *event.Bus, log *zap.Logger, defaultBalance int64) *Service {
	return &Service{
		db:             db,
		wallet:         wallet,
		history:        hist,
		rng:            rng,
		bus:            bus,
		log:            log,
		defaultBalance: defaultBalance,
	}
}

// Play settles one wager. The balance write and the history append
// share a single transaction, so a settled wager is always visible in
// both tables or in neither. Concurrent bets for the same user still
// race on the balance read: the last settlement to commit wins.
func (s *Service) Play(req PlayRequest) (*Result, error) {

	before, err := s.wallet.GetOrCreate(req.UserID, s.defaultBalance)
	if err != nil {
		return nil, err
	}

	if req.Bet <= 0 {
		monitoring.WagersPlayed.WithLabelValues("rejected").Inc()
		return nil, &RejectionError{Reason: reasonInvalidBet, Balance: before}
	}
	if before < req.Bet {
		monitoring.WagersPlayed.WithLabelValues("rejected").Inc()
		return nil, &RejectionError{Reason: reasonInsufficientFunds, Balance: before}
	}

	working := before - req.Bet

	numbers := s.rng.Draw(drawCount, drawMax)
	win := s.rng.Chance(winChance)
	if win {
		working += req.Bet * 2
	}

	entry := &history.Entry{
		TS:         time.Now().UTC().Format(time.RFC3339),
		UserID:     req.UserID,
		Bet:        req.Bet,
		Numbers:    numbers,
		Win:        win,
		CoinBefore: before,
		CoinAfter:  working,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	if err := s.wallet.SetBalanceTx(tx, req.UserID, working); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := s.history.AppendTx(tx, entry); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	outcome := "lose"
	if win {
		outcome = "win"
	}
	monitoring.WagersPlayed.WithLabelValues(outcome).Inc()
	monitoring.CoinsWagered.Add(float64(req.Bet))

	s.log.Info("wager settled",
		zap.String("user_id", req.UserID),
		zap.Int64("bet", req.Bet),
		zap.Bool("win", win),
		zap.Int64("coin_before", before),
		zap.Int64("coin_after", working),
	)

	s.bus.Publish(event.EventWagerSettled, entry)

	return &Result{
		Numbers: numbers,
		Win:     win,
		Coin:    working,
	}, nil
}
