package repository

import (
	"context"

	"okean/internal/domain/model"

	"gorm.io/gorm"
)

type ContactMessageGormRepository struct {
	db *gorm.DB
}

func NewContactMessageGormRepository(db *gorm.DB) *ContactMessageGormRepository {
	return &ContactMessageGormRepository{db: db}
}

func (r *ContactMessageGormRepository) Create(ctx context.Context, msg model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(&msg).Error
}

func (r *ContactMessageGormRepository) ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	var messages []model.ContactMessage
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
