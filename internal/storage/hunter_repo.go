package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// NeverLoggedIn is the last_login sentinel for a profile that has not yet
// been through a day boundary.
const NeverLoggedIn = "2000-01-01"

type HunterRepo struct {
	db DBTX
}

func NewHunterRepo(db DBTX) *HunterRepo {
	return &HunterRepo{db: db}
}

const hunterColumns = `name, rank, level, xp, xp_to_next, gold, skill_points,
	stat_str, stat_int, stat_wil, stat_fin, stat_cha, last_login, weekly_focus_hours`

func scanHunter(row *sql.Row) (*Hunter, error) {
	var h Hunter
	err := row.Scan(
		&h.Name, &h.Rank, &h.Level, &h.XP, &h.XPToNext, &h.Gold, &h.SkillPoints,
		&h.StatStr, &h.StatInt, &h.StatWil, &h.StatFin, &h.StatCha,
		&h.LastLogin, &h.WeeklyFocusHours,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("hunter scan: %w", err)
	}
	return &h, nil
}

func (r *HunterRepo) Get(ctx context.Context, name string) (*Hunter, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+hunterColumns+` FROM hunters WHERE name = ?`, name)
	return scanHunter(row)
}

// GetOrCreate returns the named hunter, inserting a default profile first
// if none exists. A missing profile is expected on first run, not an error.
func (r *HunterRepo) GetOrCreate(ctx context.Context, name string) (*Hunter, error) {
	h, err := r.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if h != nil {
		return h, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO hunters (name) VALUES (?)`, name); err != nil {
		return nil, fmt.Errorf("hunter insert: %w", err)
	}
	return r.Get(ctx, name)
}

func (r *HunterRepo) Update(ctx context.Context, h *Hunter) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE hunters
		SET rank = ?, level = ?, xp = ?, xp_to_next = ?, gold = ?, skill_points = ?,
			stat_str = ?, stat_int = ?, stat_wil = ?, stat_fin = ?, stat_cha = ?,
			last_login = ?, weekly_focus_hours = ?
		WHERE name = ?
	`, h.Rank, h.Level, h.XP, h.XPToNext, h.Gold, h.SkillPoints,
		h.StatStr, h.StatInt, h.StatWil, h.StatFin, h.StatCha,
		h.LastLogin, h.WeeklyFocusHours, h.Name)
	if err != nil {
		return fmt.Errorf("hunter update: %w", err)
	}
	return nil
}
