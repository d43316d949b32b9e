package store

import (
	"context"                    // Context for queries
	"errors"                     // errors.Is for gorm.ErrRecordNotFound
	"fmt"                        // Error wrapping
	"storefront/internal/domain" // StoreEntry model

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Upsert clause
)

// GormBackend stores every scope as rows of domain.StoreEntry
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend wraps an open GORM connection. The store_entries table must
// exist; run cmd/migrate first.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// For returns the Store for the given scope
func (b *GormBackend) For(scope string) Store {
	return &gormStore{db: b.db, scope: scope}
}

// Ping checks the underlying SQL connection
func (b *GormBackend) Ping(ctx context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type gormStore struct {
	db    *gorm.DB
	scope string
}

func (s *gormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry domain.StoreEntry
	err := s.db.WithContext(ctx).
		Where("scope = ? AND storage_key = ?", s.scope, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("gorm get %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *gormStore) Set(ctx context.Context, key, value string) error {
	entry := domain.StoreEntry{Scope: s.scope, Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}, {Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("gorm set %s: %w", key, err)
	}
	return nil
}

func (s *gormStore) Remove(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).
		Where("scope = ? AND storage_key = ?", s.scope, key).
		Delete(&domain.StoreEntry{}).Error
	if err != nil {
		return fmt.Errorf("gorm remove %s: %w", key, err)
	}
	return nil
}
