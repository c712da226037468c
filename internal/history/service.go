package history

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Entry is one settled wager. Rows are append-only and never updated.
type Entry struct {
	Ref        string `json:"ref"`
	TS         string `json:"ts"`
	UserID     string `json:"user_id"`
	Bet        int64  `json:"bet"`
	Numbers    []int  `json:"numbers"`
	Win        bool   `json:"win"`
	CoinBefore int64  `json:"coin_before"`
	CoinAfter  int64  `json:"coin_after"`
}

type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Append(e *Entry) error {
	return appendEntry(s.db, e)
}

// AppendTx is Append inside a caller-owned transaction.
func (s *Service) AppendTx(tx *sql.Tx, e *Entry) error {
	return appendEntry(tx, e)
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func appendEntry(q execer, e *Entry) error {
	if e.Ref == "" {
		e.Ref = uuid.New().String()
	}

	numbers, err := json.Marshal(e.Numbers)
	if err != nil {
		return fmt.Errorf("failed to marshal draw numbers: %w", err)
	}

	_, err = q.Exec(`
	INSERT INTO history (ref, ts, user_id, bet, numbers, win, coin_before, coin_after)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.Ref, e.TS, e.UserID, e.Bet, string(numbers), e.Win, e.CoinBefore, e.CoinAfter)
	if err != nil {
		return fmt.Errorf("failed to append history for %s: %w", e.UserID, err)
	}
	return nil
}

// Query returns entries newest first, optionally filtered by user,
// capped at limit rows.
func (s *Service) Query(userID string, limit int) ([]Entry, error) {
	query := `SELECT ref, ts, user_id, bet, numbers, win, coin_before, coin_after FROM history`
	args := []interface{}{}
	if userID != "" {
		query += ` WHERE user_id = ?`
		args = append(args, userID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var numbers string
		if err := rows.Scan(&e.Ref, &e.TS, &e.UserID, &e.Bet, &numbers, &e.Win, &e.CoinBefore, &e.CoinAfter); err != nil {
			return nil, err
		}
		if numbers != "" {
			if err := json.Unmarshal([]byte(numbers), &e.Numbers); err != nil {
				return nil, fmt.Errorf("corrupt draw numbers in history %s: %w", e.Ref, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
