package usecase

import (
	"context"
	"net/http"
	"strings"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"github.com/google/uuid"
)

type ContactUsecase struct {
	messages repo.ContactMessageRepository
}

func NewContactUsecase(messages repo.ContactMessageRepository) *ContactUsecase {
	return &ContactUsecase{messages: messages}
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

func (u *ContactUsecase) Submit(ctx context.Context, in ContactInput) error {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	msg := strings.TrimSpace(in.Message)

	if name == "" || email == "" || msg == "" {
		return NewHTTPError(http.StatusBadRequest, "all fields required")
	}
	if len(msg) > 5000 {
		return NewHTTPError(http.StatusBadRequest, "message too long")
	}

	err := u.messages.Create(ctx, model.ContactMessage{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Message: msg,
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ContactUsecase) ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	msgs, err := u.messages.ListRecent(ctx, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return msgs, nil
}
