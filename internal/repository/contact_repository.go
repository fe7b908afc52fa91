package repository

import (
	"context"

	"okean/internal/domain/model"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, msg model.ContactMessage) error
	ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error)
}
