package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type CompletionRepo struct {
	db DBTX
}

func NewCompletionRepo(db DBTX) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, c QuestCompletion) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO quest_completions (hunter, quest_key, day, fraction, xp_awarded, gold_awarded, stat_key, stat_awarded, level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.Hunter, c.QuestKey, c.Day, c.Fraction, c.XPAwarded, c.GoldAwarded, c.StatKey, c.StatAwarded, c.Level)
	if err != nil {
		return 0, fmt.Errorf("completion insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("completion last insert id: %w", err)
	}
	return id, nil
}

// GetOn returns the completion for one quest on one day, or nil.
func (r *CompletionRepo) GetOn(ctx context.Context, hunter, questKey, day string) (*QuestCompletion, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, hunter, quest_key, day, fraction, xp_awarded, gold_awarded, stat_key, stat_awarded, level
		FROM quest_completions
		WHERE hunter = ? AND quest_key = ? AND day = ?
	`, hunter, questKey, day)

	var c QuestCompletion
	err := row.Scan(&c.ID, &c.Hunter, &c.QuestKey, &c.Day, &c.Fraction,
		&c.XPAwarded, &c.GoldAwarded, &c.StatKey, &c.StatAwarded, &c.Level)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("completion get: %w", err)
	}
	return &c, nil
}

// KeysOn returns the quest keys completed on the given day, insertion order.
func (r *CompletionRepo) KeysOn(ctx context.Context, hunter, day string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT quest_key FROM quest_completions
		WHERE hunter = ? AND day = ?
		ORDER BY id
	`, hunter, day)
	if err != nil {
		return nil, fmt.Errorf("completion keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("completion keys scan: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion keys rows: %w", err)
	}
	return keys, nil
}

func (r *CompletionRepo) CountOn(ctx context.Context, hunter, day string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM quest_completions WHERE hunter = ? AND day = ?
	`, hunter, day)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}

func (r *CompletionRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quest_completions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("completion delete: %w", err)
	}
	return nil
}
