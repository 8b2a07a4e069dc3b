package tag

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ShohjahonSohibov/Aberno/model"
	"github.com/ShohjahonSohibov/Aberno/repository/query"
)

type SQL struct {
	conn *sqlx.DB
}

type TagRepository interface {
	Create(ctx context.Context, data *model.Tag) (*model.Tag, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Tag, int64, error)
	GetByID(ctx context.Context, id string) (*model.Tag, error)
	ExistsByName(ctx context.Context, name model.LocalizedText, excludeID string) (bool, error)
	Update(ctx context.Context, data *model.Tag) error
	Delete(ctx context.Context, id string) error
}

func NewTagRepository(conn *sqlx.DB) TagRepository {
	return &SQL{conn: conn}
}

const (
	insertQuery = `INSERT INTO tags (id, name_uz, name_ru, name_en, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	updateQuery = `UPDATE tags SET name_uz = ?, name_ru = ?, name_en = ?, is_active = ?, updated_at = ? WHERE id = ?`
	existsQuery = `SELECT COUNT(*) FROM tags WHERE name_uz = ? AND name_ru = ? AND name_en = ? AND id <> ?`
	unlinkQuery = `DELETE FROM post_tags WHERE tag_id = ?`
	deleteQuery = `DELETE FROM tags WHERE id = ?`
)

var (
	columns  = "t.id, " + query.NamedColumns("t", "name") + ", t.is_active, t.created_at, t.updated_at"
	getQuery = "SELECT " + columns + " FROM tags t WHERE t.id = ?"
)

func (s *SQL) Create(ctx context.Context, data *model.Tag) (*model.Tag, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	_, err := s.conn.ExecContext(ctx, insertQuery, id, data.Name.Uz, data.Name.Ru, data.Name.En, data.IsActive, now, now)
	if err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter model.ListFilter) ([]model.Tag, int64, error) {
	qb := query.New("tags", "t").
		Bool("is_active", filter.IsActive).
		Search(filter.Search, query.LocalizedColumns("name")...).
		OrderBy("created_at", filter.SortByCreatedAt).
		Paginate(filter.Page, filter.Limit)

	var total int64
	countQuery, countArgs := qb.CountSQL()
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Tag, 0)
	selectQuery, args := qb.SelectSQL(columns)
	if err := s.conn.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Tag, error) {
	var item model.Tag
	if err := s.conn.QueryRowxContext(ctx, getQuery, id).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) ExistsByName(ctx context.Context, name model.LocalizedText, excludeID string) (bool, error) {
	var n int64
	if err := s.conn.GetContext(ctx, &n, existsQuery, name.Uz, name.Ru, name.En, excludeID); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) Update(ctx context.Context, data *model.Tag) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateQuery, data.Name.Uz, data.Name.Ru, data.Name.En, data.IsActive, data.UpdatedAt, data.ID)
	return err
}

// Delete removes the post links first, then the row itself.
func (s *SQL) Delete(ctx context.Context, id string) error {
	if _, err := s.conn.ExecContext(ctx, unlinkQuery, id); err != nil {
		return err
	}
	_, err := s.conn.ExecContext(ctx, deleteQuery, id)
	return err
}
