package category

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

type CategoryRepository interface {
	Create(ctx context.Context, data *model.Category) (*model.Category, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Category, int64, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	ExistsByName(ctx context.Context, name model.LocalizedText, excludeID string) (bool, error)
	Update(ctx context.Context, data *model.Category) error
	Delete(ctx context.Context, id string) error
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const (
	insertCategoryQuery = `INSERT INTO categories (id, brand_id, name_uz, name_ru, name_en, is_active, created_at, updated_at) VALUES (?, NULLIF(?, ''), ?, ?, ?, ?, ?, ?)`
	updateCategoryQuery = `UPDATE categories SET brand_id = NULLIF(?, ''), name_uz = ?, name_ru = ?, name_en = ?, is_active = ?, updated_at = ? WHERE id = ?`
	existsCategoryQuery = `SELECT COUNT(*) FROM categories WHERE name_uz = ? AND name_ru = ? AND name_en = ? AND id <> ?`
	unsetProductQuery   = `UPDATE products SET category_id = NULL WHERE category_id = ?`
	deleteCategoryQuery = `DELETE FROM categories WHERE id = ?`
)

var (
	categoryColumns  = "c.id, COALESCE(c.brand_id, '') AS brand_id, " + query.NamedColumns("c", "name") + ", c.is_active, c.created_at, c.updated_at"
	getCategoryQuery = "SELECT " + categoryColumns + " FROM categories c WHERE c.id = ?"
)

func (s *SQL) Create(ctx context.Context, data *model.Category) (*model.Category, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	_, err := s.conn.ExecContext(ctx, insertCategoryQuery, id, data.BrandID, data.Name.Uz, data.Name.Ru, data.Name.En, data.IsActive, now, now)
	if err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter model.ListFilter) ([]model.Category, int64, error) {
	qb := query.New("categories", "c").
		Bool("is_active", filter.IsActive).
		In("brand_id", filter.Brands).
		Search(filter.Search, query.LocalizedColumns("name")...).
		OrderBy("created_at", filter.SortByCreatedAt).
		Paginate(filter.Page, filter.Limit)

	var total int64
	countQuery, countArgs := qb.CountSQL()
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Category, 0)
	selectQuery, args := qb.SelectSQL(categoryColumns)
	if err := s.conn.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, 0, err
	}
	if err := s.attachBrands(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID returns nil, nil when the category does not exist.
func (s *SQL) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	if err := s.conn.QueryRowxContext(ctx, getCategoryQuery, id).StructScan(&category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items := []model.Category{category}
	if err := s.attachBrands(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// attachBrands resolves brand_id into the active brand, if any.
func (s *SQL) attachBrands(ctx context.Context, items []model.Category) error {
	ids := make([]string, 0, len(items))
	for _, c := range items {
		ids = append(ids, c.BrandID)
	}
	refs, err := query.LoadByIDs[model.Ref](ctx, s.conn, query.ActiveRefsQuery("brands"), ids)
	if err != nil {
		return err
	}
	byID := query.RefsByID(refs)
	for i := range items {
		items[i].Brand = byID[items[i].BrandID]
	}
	return nil
}

func (s *SQL) ExistsByName(ctx context.Context, name model.LocalizedText, excludeID string) (bool, error) {
	var n int64
	if err := s.conn.GetContext(ctx, &n, existsCategoryQuery, name.Uz, name.Ru, name.En, excludeID); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) Update(ctx context.Context, data *model.Category) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateCategoryQuery, data.BrandID, data.Name.Uz, data.Name.Ru, data.Name.En, data.IsActive, data.UpdatedAt, data.ID)
	return err
}

// Delete detaches products from the category, then removes it.
func (s *SQL) Delete(ctx context.Context, id string) error {
	if _, err := s.conn.ExecContext(ctx, unsetProductQuery, id); err != nil {
		return err
	}
	_, err := s.conn.ExecContext(ctx, deleteCategoryQuery, id)
	return err
}
