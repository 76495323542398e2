package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	Append(ctx context.Context, typ Type, key string, data interface{}) error
	ListByKey(ctx context.Context, key string) ([]Event, error)
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Append(ctx context.Context, typ Type, key string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", typ, err)
	}

	ev := Event{Type: typ, Key: key, Data: raw}
	if err := r.db.WithContext(ctx).Create(&ev).Error; err != nil {
		return fmt.Errorf("append %s event: %w", typ, err)
	}
	return nil
}

func (r *repository) ListByKey(ctx context.Context, key string) ([]Event, error) {
	var events []Event
	if err := r.db.WithContext(ctx).
		Where("event_key = ?", key).
		Order("id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
