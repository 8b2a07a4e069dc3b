package admin

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AdminRepository interface {
	Create(ctx context.Context, req *model.AdminEntity) (*model.AdminEntity, error)
	Get(ctx context.Context, filter *model.AdminFilter) (*model.AdminEntity, error)
	Update(ctx context.Context, data *model.AdminEntity) error
	// UpdateRefreshToken replaces the stored refresh token and stamps the visit.
	UpdateRefreshToken(ctx context.Context, id, token string, visitedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

func NewAdminRepository(conn *sqlx.DB) AdminRepository {
	return &SQL{conn: conn}
}

const (
	insertAdminQuery = `INSERT INTO admins (id, username, fullname, phone, email, password_hash, profile_picture, bio, type, created_at, updated_at)
VALUES (?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?, ?, ?, ?, ?)`
	getAdminBase = `SELECT id, username, fullname, COALESCE(phone, '') AS phone, COALESCE(email, '') AS email, password_hash,
profile_picture, COALESCE(bio, '') AS bio, COALESCE(refresh_token, '') AS refresh_token, last_visit, type, created_at, updated_at
FROM admins WHERE true`
	updateAdminQuery = `UPDATE admins SET username = ?, fullname = ?, phone = NULLIF(?, ''), email = NULLIF(?, ''), password_hash = ?,
profile_picture = ?, bio = ?, updated_at = ? WHERE id = ?`
	updateRefreshTokenQuery = `UPDATE admins SET refresh_token = ?, last_visit = ? WHERE id = ?`
	deleteAdminQuery        = `DELETE FROM admins WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.AdminEntity) (*model.AdminEntity, error) {
	now := time.Now().UTC()
	id := uuid.NewString()
	if data.Type == "" {
		data.Type = constant.RoleAdmin
	}

	_, err := s.conn.ExecContext(ctx, insertAdminQuery,
		id, data.Username, data.Fullname, data.Phone, data.Email, data.PasswordHash,
		data.ProfilePicture, data.Bio, data.Type, now, now)
	if err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

// Get returns nil, nil when nothing matches or the filter is empty.
func (s *SQL) Get(ctx context.Context, filter *model.AdminFilter) (*model.AdminEntity, error) {
	query := getAdminBase
	args := make([]any, 0, 4)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}
	if len(args) == 0 {
		return nil, nil
	}

	var entity model.AdminEntity
	if err := s.conn.QueryRowxContext(ctx, query+" LIMIT 1", args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, data *model.AdminEntity) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateAdminQuery,
		data.Username, data.Fullname, data.Phone, data.Email, data.PasswordHash,
		data.ProfilePicture, data.Bio, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) UpdateRefreshToken(ctx context.Context, id, token string, visitedAt time.Time) error {
	_, err := s.conn.ExecContext(ctx, updateRefreshTokenQuery, token, visitedAt, id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, deleteAdminQuery, id)
	return err
}
