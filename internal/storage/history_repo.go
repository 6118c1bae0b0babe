package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type HistoryRepo struct {
	db DBTX
}

func NewHistoryRepo(db DBTX) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Upsert writes the day snapshot, replacing any prior snapshot for the same
// day. Idempotent by (hunter, day).
func (r *HistoryRepo) Upsert(ctx context.Context, rec HistoryRecord) error {
	completed, err := json.Marshal(rec.CompletedQuests)
	if err != nil {
		return fmt.Errorf("history marshal: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO history (hunter, day, completed_quests, level, xp, gold)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(hunter, day) DO UPDATE SET
			completed_quests = excluded.completed_quests,
			level = excluded.level,
			xp = excluded.xp,
			gold = excluded.gold
	`, rec.Hunter, rec.Day, string(completed), rec.Level, rec.XP, rec.Gold)
	if err != nil {
		return fmt.Errorf("history upsert: %w", err)
	}
	return nil
}

func scanHistory(scan func(dest ...any) error) (*HistoryRecord, error) {
	var rec HistoryRecord
	var completed string
	if err := scan(&rec.Hunter, &rec.Day, &completed, &rec.Level, &rec.XP, &rec.Gold); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(completed), &rec.CompletedQuests); err != nil {
		return nil, fmt.Errorf("history unmarshal: %w", err)
	}
	return &rec, nil
}

func (r *HistoryRepo) Get(ctx context.Context, hunter, day string) (*HistoryRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT hunter, day, completed_quests, level, xp, gold
		FROM history
		WHERE hunter = ? AND day = ?
	`, hunter, day)

	rec, err := scanHistory(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("history get: %w", err)
	}
	return rec, nil
}

// ListRecent returns up to limit records, newest first.
func (r *HistoryRepo) ListRecent(ctx context.Context, hunter string, limit int) ([]HistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT hunter, day, completed_quests, level, xp, gold
		FROM history
		WHERE hunter = ?
		ORDER BY day DESC
		LIMIT ?
	`, hunter, limit)
	if err != nil {
		return nil, fmt.Errorf("history list: %w", err)
	}
	defer rows.Close()

	var recs []HistoryRecord
	for rows.Next() {
		rec, err := scanHistory(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("history list scan: %w", err)
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history list rows: %w", err)
	}
	return recs, nil
}
