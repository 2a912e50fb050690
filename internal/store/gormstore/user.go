package gormstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

type userStore struct {
	db *gorm.DB
}

func (s *userStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User

	if err := s.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, wrapErr("user list", err)
	}

	return users, nil
}

func (s *userStore) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, wrapErr("user get", err)
	}

	return &user, nil
}

func (s *userStore) Create(ctx context.Context, u *models.User) error {
	if u.Email == "" {
		return store.NewValidationError("email", "can not be empty")
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	if u.Role == "" {
		u.Role = models.RoleUser
	}

	if u.Role != models.RoleUser && u.Role != models.RoleAdmin {
		return store.NewValidationError("role", "must be USER or ADMIN")
	}

	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return wrapErr("user create", err)
	}

	return nil
}

func (s *userStore) Update(ctx context.Context, u *models.User) error {
	var existing models.User

	err := s.db.WithContext(ctx).First(&existing, "id = ?", u.ID).Error
	if err != nil {
		return wrapErr("user update", err)
	}

	existing.Email = u.Email
	existing.Name = u.Name
	existing.Role = u.Role

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return wrapErr("user update", err)
	}

	*u = existing

	return nil
}

func (s *userStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return wrapErr("user delete", result.Error)
	}

	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *userStore) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, wrapErr("user count", err)
	}

	return count, nil
}
