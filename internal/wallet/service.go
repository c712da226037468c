package wallet

import (
	"database/sql"
	"fmt"

	"loto-platform/internal/monitoring"
)

type User struct {
	UserID string `json:"user_id"`
	Coin   int64  `json:"coin"`
}

type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// GetOrCreate returns the user's balance, inserting the row with
// defaultBalance on first reference. The insert is guarded by the
// primary key so two concurrent calls for a new id cannot both insert.
func (s *Service) GetOrCreate(userID string, defaultBalance int64) (int64, error) {
	_, err := s.db.Exec(`
	INSERT INTO users (user_id, coin)
	VALUES (?, ?)
	ON CONFLICT(user_id) DO NOTHING
	`, userID, defaultBalance)
	if err != nil {
		return 0, fmt.Errorf("failed to create user %s: %w", userID, err)
	}

	var coin int64
	if err := s.db.QueryRow(`SELECT coin FROM users WHERE user_id = ?`, userID).Scan(&coin); err != nil {
		return 0, fmt.Errorf("failed to load balance for %s: %w", userID, err)
	}
	return coin, nil
}

// SetBalance upserts unconditionally. Last writer wins.
func (s *Service) SetBalance(userID string, coin int64) error {
	return setBalance(s.db, userID, coin)
}

// SetBalanceTx is SetBalance inside a caller-owned transaction.
func (s *Service) SetBalanceTx(tx *sql.Tx, userID string, coin int64) error {
	return setBalance(tx, userID, coin)
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func setBalance(q execer, userID string, coin int64) error {
	_, err := q.Exec(`
	INSERT INTO users (user_id, coin)
	VALUES (?, ?)
	ON CONFLICT(user_id) DO UPDATE SET coin = excluded.coin
	`, userID, coin)
	if err != nil {
		return fmt.Errorf("failed to set balance for %s: %w", userID, err)
	}
	monitoring.BalanceUpdates.Inc()
	return nil
}

func (s *Service) List() ([]User, error) {
	rows, err := s.db.Query(`SELECT user_id, coin FROM users ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.UserID, &u.Coin); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ResetAll sets every balance to defaultBalance in one statement.
func (s *Service) ResetAll(defaultBalance int64) error {
	_, err := s.db.Exec(`UPDATE users SET coin = ?`, defaultBalance)
	if err != nil {
		return fmt.Errorf("failed to reset balances: %w", err)
	}
	monitoring.BalanceUpdates.Inc()
	return nil
}

func (s *Service) Stats() (users int64, totalCoins int64, err error) {
	err = s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(coin), 0) FROM users`).Scan(&users, &totalCoins)
	return users, totalCoins, err
}
