package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateFunc receives the current value of a key and returns its replacement.
// Returning a nil slice removes the key. Returning an error aborts the update
// and is passed back unchanged.
type UpdateFunc func(current []byte, found bool) ([]byte, error)

// KVStore defines the key/value operations the group store is built on.
type KVStore interface {
	GetItem(ctx context.Context, key string) ([]byte, bool, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

type kvStore struct {
	db *gorm.DB
}

// NewKVStore creates a KVStore over db. Migrate must have run first.
func NewKVStore(db *gorm.DB) KVStore {
	return &kvStore{db: db}
}

// Migrate creates or updates the storage table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("storage.Migrate: %w", err)
	}
	return nil
}

func (s *kvStore) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	entry, found, err := find(s.db.WithContext(ctx), key, false)
	if err != nil {
		return nil, false, fmt.Errorf("storage.GetItem %q: %w", key, err)
	}
	if !found {
		return nil, false, nil
	}
	return []byte(entry.Value), true, nil
}

func (s *kvStore) SetItem(ctx context.Context, key string, value []byte) error {
	if err := upsert(s.db.WithContext(ctx), key, value); err != nil {
		return fmt.Errorf("storage.SetItem %q: %w", key, err)
	}
	return nil
}

func (s *kvStore) RemoveItem(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where(map[string]any{"key": key}).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("storage.RemoveItem %q: %w", key, err)
	}
	return nil
}

// Update runs fn inside a transaction. On postgres the row is locked FOR
// UPDATE; the sqlite dialector drops the locking clause, and sqlite
// serializes writers on its own.
func (s *kvStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, found, err := find(tx, key, true)
		if err != nil {
			return fmt.Errorf("storage.Update %q: %w", key, err)
		}

		var current []byte
		if found {
			current = []byte(entry.Value)
		}

		next, err := fn(current, found)
		if err != nil {
			return err
		}

		if next == nil {
			if !found {
				return nil
			}
			if err := tx.Where(map[string]any{"key": key}).Delete(&Entry{}).Error; err != nil {
				return fmt.Errorf("storage.Update %q: %w", key, err)
			}
			return nil
		}

		if err := upsert(tx, key, next); err != nil {
			return fmt.Errorf("storage.Update %q: %w", key, err)
		}
		return nil
	})
}

func find(db *gorm.DB, key string, lock bool) (Entry, bool, error) {
	query := db.Where(map[string]any{"key": key}).Limit(1)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var entries []Entry
	if err := query.Find(&entries).Error; err != nil {
		return Entry{}, false, err
	}
	if len(entries) == 0 {
		return Entry{}, false, nil
	}
	return entries[0], true, nil
}

func upsert(db *gorm.DB, key string, value []byte) error {
	entry := Entry{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
