package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the persistence gateway: a record store for the activity
// log, contacts and settings. Two backends implement it (SQLite table store,
// Badger key-value fallback); callers never care which.
type Repository interface {
	GetActivityLog(ctx context.Context) ([]ActivityEntry, error)
	AddActivity(ctx context.Context, in ActivityEntry) error
	ClearActivityLog(ctx context.Context) error

	GetContacts(ctx context.Context) ([]Contact, error)
	UpsertContact(ctx context.Context, in Contact) error
	DeleteContact(ctx context.Context, id string) error
	ImportContacts(ctx context.Context, in []Contact) error
	ClearContacts(ctx context.Context) error

	GetWeeklyGoal(ctx context.Context) (int, error)
	SetWeeklyGoal(ctx context.Context, goal int) error

	Close() error
}
