package db

import "database/sql"

func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		coin INTEGER NOT NULL
	);`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ref TEXT,
		ts TEXT,
		user_id TEXT,
		bet INTEGER,
		numbers TEXT,
		win INTEGER,
		coin_before INTEGER,
		coin_after INTEGER
	);`)
	return err
}
