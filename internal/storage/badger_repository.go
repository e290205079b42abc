package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	badger "github.com/dgraph-io/badger/v3"
)

const (
	activityKeyPrefix = "activity:"
	contactKeyPrefix  = "contact:"
	settingsKeyPrefix = "settings:"
)

// BadgerRepository is the key-value fallback backend. Records are stored
// as JSON blobs under typed key prefixes; ordering is reconstructed on read.
type BadgerRepository struct {
	db *badger.DB
}

func OpenBadger(dir string) (*BadgerRepository, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerRepository{db: db}, nil
}

func (r *BadgerRepository) Close() error {
	return r.db.Close()
}

func (r *BadgerRepository) GetActivityLog(ctx context.Context) ([]ActivityEntry, error) {
	out := make([]ActivityEntry, 0)
	err := r.scanPrefix(ctx, activityKeyPrefix, func(val []byte) error {
		var entry ActivityEntry
		if err := json.Unmarshal(val, &entry); err != nil {
			return err
		}
		out = append(out, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (r *BadgerRepository) AddActivity(ctx context.Context, in ActivityEntry) error {
	return r.putJSON(ctx, activityKeyPrefix+in.ID, in)
}

func (r *BadgerRepository) ClearActivityLog(ctx context.Context) error {
	return r.deletePrefix(ctx, activityKeyPrefix)
}

func (r *BadgerRepository) GetContacts(ctx context.Context) ([]Contact, error) {
	out := make([]Contact, 0)
	err := r.scanPrefix(ctx, contactKeyPrefix, func(val []byte) error {
		var contact Contact
		if err := json.Unmarshal(val, &contact); err != nil {
			return err
		}
		out = append(out, contact)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *BadgerRepository) UpsertContact(ctx context.Context, in Contact) error {
	return r.putJSON(ctx, contactKeyPrefix+in.ID, in)
}

func (r *BadgerRepository) DeleteContact(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := []byte(contactKeyPrefix + id)
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return txn.Delete(key)
	})
}

func (r *BadgerRepository) ImportContacts(ctx context.Context, in []Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, c := range in {
		raw, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal contact %s: %w", c.ID, err)
		}
		if err := wb.Set([]byte(contactKeyPrefix+c.ID), raw); err != nil {
			return err
		}
	}
	return wb.Flush()
}

func (r *BadgerRepository) ClearContacts(ctx context.Context) error {
	return r.deletePrefix(ctx, contactKeyPrefix)
}

func (r *BadgerRepository) GetWeeklyGoal(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	goal := defaultWeeklyGoal
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(settingsKeyPrefix + weeklyGoalKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			parsed, parseErr := strconv.Atoi(string(val))
			if parseErr != nil {
				return fmt.Errorf("parse weekly goal %q: %w", val, parseErr)
			}
			goal = parsed
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return goal, nil
}

func (r *BadgerRepository) SetWeeklyGoal(ctx context.Context, goal int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(settingsKeyPrefix+weeklyGoalKey), []byte(strconv.Itoa(goal)))
	})
}

func (r *BadgerRepository) putJSON(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
}

func (r *BadgerRepository) scanPrefix(ctx context.Context, prefix string, fn func(val []byte) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BadgerRepository) deletePrefix(ctx context.Context, prefix string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	keys := make([][]byte, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return err
	}
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range keys {
		if err := wb.Delete(key); err != nil {
			return err
		}
	}
	return wb.Flush()
}
