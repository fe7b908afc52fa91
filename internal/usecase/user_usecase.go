package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"github.com/google/uuid"
)

type UserUsecase struct {
	users     repo.UserRepository
	auth      *AuthUsecase
	auditRepo repo.AuditLogRepository
}

func NewUserUsecase(users repo.UserRepository, auth *AuthUsecase, auditRepo repo.AuditLogRepository) *UserUsecase {
	return &UserUsecase{users: users, auth: auth, auditRepo: auditRepo}
}

type UpdateProfileInput struct {
	FullName string
	Phone    string
}

// UpdateProfile lets a signed-in user change their own name and phone.
// Empty fields are left as they are.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*UserDTO, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.FullName) > 255 || len(in.Phone) > 30 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if v := optional(in.FullName); v != nil {
		user.FullName = v
	}
	if v := optional(in.Phone); v != nil {
		user.Phone = v
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	dto := toUserDTO(user)
	return &dto, nil
}

type UserListOutput struct {
	Items []model.User `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func (u *UserUsecase) AdminListUsers(ctx context.Context, page int, limit int, q string) (UserListOutput, error) {
	if page < 1 || limit < 1 || limit > 100 {
		return UserListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}

	users, total, err := u.users.List(ctx, repo.UserListQuery{
		Page:  page,
		Limit: limit,
		Q:     strings.TrimSpace(q),
	})
	if err != nil {
		return UserListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return UserListOutput{Items: users, Total: total, Page: page, Limit: limit}, nil
}

// AdminSetRole changes a user's role. The actor cannot change their own
// role; the target is force-logged-out so the old role claim dies with
// the outstanding tokens.
func (u *UserUsecase) AdminSetRole(ctx context.Context, adminUserID string, targetUserID string, role model.Role) error {
	if adminUserID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if targetUserID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if role != model.RoleCustomer && role != model.RoleAdmin {
		return NewHTTPError(http.StatusBadRequest, "invalid role")
	}
	if targetUserID == adminUserID {
		return NewHTTPError(http.StatusConflict, "cannot change own role")
	}

	user, err := u.users.FindByID(ctx, targetUserID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if user.Role == role {
		return nil
	}

	before := user.Role
	user.Role = role
	if err := u.users.Update(ctx, user); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.auth.ForceLogout(ctx, targetUserID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "force logout failed")
	}

	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ID:           uuid.NewString(),
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateUserRole,
		ResourceType: model.AuditResourceUser,
		ResourceID:   targetUserID,
		BeforeJSON:   fmt.Sprintf(`{"role":%q}`, before),
		AfterJSON:    fmt.Sprintf(`{"role":%q}`, role),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// AdminSetActive activates or deactivates a user. Deactivation also
// kills the user's sessions via a token version bump.
func (u *UserUsecase) AdminSetActive(ctx context.Context, adminUserID string, targetUserID string, active bool) error {
	if adminUserID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if targetUserID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if targetUserID == adminUserID {
		return NewHTTPError(http.StatusConflict, "cannot deactivate self")
	}

	user, err := u.users.FindByID(ctx, targetUserID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if user.IsActive == active {
		return nil
	}

	user.IsActive = active
	if err := u.users.Update(ctx, user); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !active {
		if _, err := u.auth.ForceLogout(ctx, targetUserID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "force logout failed")
		}

		if err := u.auditRepo.Create(ctx, model.AuditLog{
			ID:           uuid.NewString(),
			ActorUserID:  adminUserID,
			Action:       model.AuditActionDeactivateUser,
			ResourceType: model.AuditResourceUser,
			ResourceID:   targetUserID,
			BeforeJSON:   `{"is_active":true}`,
			AfterJSON:    `{"is_active":false}`,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return nil
}
