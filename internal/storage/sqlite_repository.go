package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

const weeklyGoalKey = "weekly_goal"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) GetActivityLog(ctx context.Context) ([]ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, activity_id, name, emoji, points, tier, date, timestamp, contact_name
		FROM activity_log ORDER BY timestamp DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ActivityEntry, 0)
	for rows.Next() {
		entry, scanErr := scanActivityEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) AddActivity(ctx context.Context, in ActivityEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_log (id, activity_id, name, emoji, points, tier, date, timestamp, contact_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.ActivityID, in.Name, in.Emoji, in.Points, in.Tier, in.Date,
		mustTime(in.Timestamp), in.ContactName,
	)
	return err
}

func (r *SQLiteRepository) ClearActivityLog(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM activity_log`)
	return err
}

func (r *SQLiteRepository) GetContacts(ctx context.Context) ([]Contact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, company, notes, warmth, seniority, last_contact, follow_up_date, created_at
		FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Contact, 0)
	for rows.Next() {
		contact, scanErr := scanContact(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, contact)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpsertContact(ctx context.Context, in Contact) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contacts (id, name, company, notes, warmth, seniority, last_contact, follow_up_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			company = excluded.company,
			notes = excluded.notes,
			warmth = excluded.warmth,
			seniority = excluded.seniority,
			last_contact = excluded.last_contact,
			follow_up_date = excluded.follow_up_date`,
		in.ID, in.Name, in.Company, in.Notes, in.Warmth, in.Seniority,
		in.LastContact, in.FollowUpDate, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) DeleteContact(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ImportContacts(ctx context.Context, in []Contact) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, c := range in {
		if _, execErr := tx.ExecContext(ctx, `
			INSERT INTO contacts (id, name, company, notes, warmth, seniority, last_contact, follow_up_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Company, c.Notes, c.Warmth, c.Seniority,
			c.LastContact, c.FollowUpDate, mustTime(c.CreatedAt),
		); execErr != nil {
			_ = tx.Rollback()
			return execErr
		}
	}
	return tx.Commit()
}

func (r *SQLiteRepository) ClearContacts(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM contacts`)
	return err
}

func (r *SQLiteRepository) GetWeeklyGoal(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, weeklyGoalKey)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultWeeklyGoal, nil
		}
		return 0, err
	}
	goal, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse weekly goal %q: %w", raw, err)
	}
	return goal, nil
}

func (r *SQLiteRepository) SetWeeklyGoal(ctx context.Context, goal int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		weeklyGoalKey, strconv.Itoa(goal),
	)
	return err
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActivityEntry(s scanner) (ActivityEntry, error) {
	var out ActivityEntry
	var ts string
	if err := s.Scan(&out.ID, &out.ActivityID, &out.Name, &out.Emoji, &out.Points, &out.Tier, &out.Date, &ts, &out.ContactName); err != nil {
		return ActivityEntry{}, err
	}
	timestamp, err := parseRequiredTime(ts)
	if err != nil {
		return ActivityEntry{}, err
	}
	out.Timestamp = timestamp
	return out, nil
}

func scanContact(s scanner) (Contact, error) {
	var out Contact
	var created string
	if err := s.Scan(&out.ID, &out.Name, &out.Company, &out.Notes, &out.Warmth, &out.Seniority, &out.LastContact, &out.FollowUpDate, &created); err != nil {
		return Contact{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Contact{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}
