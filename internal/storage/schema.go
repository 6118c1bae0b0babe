package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS hunters (
			name TEXT PRIMARY KEY,
			rank TEXT DEFAULT 'E-Rank',
			level INTEGER DEFAULT 1,
			xp INTEGER DEFAULT 0,
			xp_to_next INTEGER DEFAULT 1000,
			gold INTEGER DEFAULT 0,
			skill_points INTEGER DEFAULT 0,

			stat_str INTEGER DEFAULT 5,
			stat_int INTEGER DEFAULT 5,
			stat_wil INTEGER DEFAULT 5,
			stat_fin INTEGER DEFAULT 5,
			stat_cha INTEGER DEFAULT 5,

			last_login TEXT DEFAULT '2000-01-01'
		);`,
		// One row per logged completion. Awarded amounts are frozen here so
		// an undo can subtract exactly what was applied.
		`CREATE TABLE IF NOT EXISTS quest_completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hunter TEXT NOT NULL,
			quest_key TEXT NOT NULL,
			day TEXT NOT NULL,
			fraction REAL NOT NULL,
			xp_awarded INTEGER NOT NULL,
			gold_awarded INTEGER NOT NULL,
			stat_key TEXT NOT NULL,
			stat_awarded INTEGER NOT NULL,
			FOREIGN KEY(hunter) REFERENCES hunters(name)
		);`,
		`CREATE TABLE IF NOT EXISTS history (
			hunter TEXT NOT NULL,
			day TEXT NOT NULL,
			completed_quests TEXT NOT NULL,
			level INTEGER NOT NULL,
			xp INTEGER NOT NULL,
			gold INTEGER NOT NULL,
			PRIMARY KEY(hunter, day)
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_completions_hunter_quest_day
			ON quest_completions(hunter, quest_key, day);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_hunter_day
			ON quest_completions(hunter, day);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Columns added after the first release (ignore if already present).
	alterStmts := []string{
		`ALTER TABLE hunters ADD COLUMN weekly_focus_hours REAL DEFAULT 0;`,
		`ALTER TABLE quest_completions ADD COLUMN level INTEGER DEFAULT 0;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
