package reststore

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

type userStore struct {
	c *Client
}

func (s *userStore) List(ctx context.Context) ([]models.User, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.asc")

	var rows []userRow
	if err := s.c.do(ctx, http.MethodGet, tableUsers, q, "", nil, &rows); err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].toModel())
	}

	return users, nil
}

func (s *userStore) Get(ctx context.Context, id string) (*models.User, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", eq(id))

	var rows []userRow
	if err := s.c.do(ctx, http.MethodGet, tableUsers, q, "", nil, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	u := rows[0].toModel()

	return &u, nil
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

	row := userToRow(u)
	stamp(&row.CreatedAt, &row.UpdatedAt)

	var rows []userRow
	if err := s.c.do(ctx, http.MethodPost, tableUsers, nil, preferUpsert, []userRow{row}, &rows); err != nil {
		return err
	}

	if len(rows) > 0 {
		*u = rows[0].toModel()
	}

	return nil
}

func (s *userStore) Update(ctx context.Context, u *models.User) error {
	q := url.Values{}
	q.Set("id", eq(u.ID))

	patch := map[string]any{
		"email":      u.Email,
		"name":       u.Name,
		"role":       string(u.Role),
		"updated_at": time.Now().UTC(),
	}

	var rows []userRow
	if err := s.c.do(ctx, http.MethodPatch, tableUsers, q, preferRepresentation, patch, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	*u = rows[0].toModel()

	return nil
}

func (s *userStore) Delete(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", eq(id))

	var rows []userRow
	if err := s.c.do(ctx, http.MethodDelete, tableUsers, q, preferRepresentation, nil, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *userStore) Count(ctx context.Context) (int64, error) {
	return s.c.count(ctx, tableUsers, nil)
}
