package brand

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

type BrandRepository interface {
	Create(ctx context.Context, data *model.Brand) (*model.Brand, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Brand, int64, error)
	// ListWithCategories lists brands, each with its active categories.
	ListWithCategories(ctx context.Context, filter model.ListFilter) ([]model.BrandWithCategories, int64, error)
	GetByID(ctx context.Context, id string) (*model.Brand, error)
	ExistsByName(ctx context.Context, name model.LocalizedText, excludeID string) (bool, error)
	Update(ctx context.Context, data *model.Brand) error
	Delete(ctx context.Context, id string) error
}

func NewBrandRepository(conn *sqlx.DB) BrandRepository {
	return &SQL{conn: conn}
}

const (
	insertBrandQuery = `INSERT INTO brands (id, name_uz, name_ru, name_en, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	updateBrandQuery = `UPDATE brands SET name_uz = ?, name_ru = ?, name_en = ?, is_active = ?, updated_at = ? WHERE id = ?`
	existsBrandQuery = `SELECT COUNT(*) FROM brands WHERE name_uz = ? AND name_ru = ? AND name_en = ? AND id <> ?`

	unsetCategoryBrandQuery = `UPDATE categories SET brand_id = NULL WHERE brand_id = ?`
	unsetClientBrandQuery   = `UPDATE clients SET brand_id = NULL WHERE brand_id = ?`
	deletePostBrandsQuery   = `DELETE FROM post_brands WHERE brand_id = ?`
	deleteBrandQuery        = `DELETE FROM brands WHERE id = ?`
)

var (
	brandColumns  = "b.id, " + query.NamedColumns("b", "name") + ", b.is_active, b.created_at, b.updated_at"
	getBrandQuery = "SELECT " + brandColumns + " FROM brands b WHERE b.id = ?"

	brandCategoriesQuery = "SELECT c.brand_id AS owner_id, c.id, " + query.NamedColumns("c", "name") +
		" FROM categories c WHERE c.is_active = 1 AND c.brand_id IN (?) ORDER BY c.created_at DESC"
)

func (s *SQL) Create(ctx context.Context, data *model.Brand) (*model.Brand, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	_, err := s.conn.ExecContext(ctx, insertBrandQuery, id, data.Name.Uz, data.Name.Ru, data.Name.En, data.IsActive, now, now)
	if err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (s *SQL) builder(filter model.ListFilter) *query.Builder {
	return query.New("brands", "b").
		Bool("is_active", filter.IsActive).
		Search(filter.Search, query.LocalizedColumns("name")...).
		OrderBy("created_at", filter.SortByCreatedAt).
		Paginate(filter.Page, filter.Limit)
}

func (s *SQL) List(ctx context.Context, filter model.ListFilter) ([]model.Brand, int64, error) {
	qb := s.builder(filter)

	var total int64
	countQuery, countArgs := qb.CountSQL()
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Brand, 0)
	selectQuery, args := qb.SelectSQL(brandColumns)
	if err := s.conn.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) ListWithCategories(ctx context.Context, filter model.ListFilter) ([]model.BrandWithCategories, int64, error) {
	brands, total, err := s.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(brands))
	for _, b := range brands {
		ids = append(ids, b.ID)
	}
	refs, err := query.LoadByIDs[query.OwnedRef](ctx, s.conn, brandCategoriesQuery, ids)
	if err != nil {
		return nil, 0, err
	}
	byBrand := query.GroupRefs(refs)

	items := make([]model.BrandWithCategories, 0, len(brands))
	for _, b := range brands {
		categories := byBrand[b.ID]
		if categories == nil {
			categories = []model.Ref{}
		}
		items = append(items, model.BrandWithCategories{Brand: b, Categories: categories})
	}
	return items, total, nil
}

// GetByID returns nil, nil when the brand does not exist.
func (s *SQL) GetByID(ctx context.Context, id string) (*model.Brand, error) {
	var brand model.Brand
	if err := s.conn.QueryRowxContext(ctx, getBrandQuery, id).StructScan(&brand); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (s *SQL) ExistsByName(ctx context.Context, name model.LocalizedText, excludeID string) (bool, error) {
	var n int64
	if err := s.conn.GetContext(ctx, &n, existsBrandQuery, name.Uz, name.Ru, name.En, excludeID); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) Update(ctx context.Context, data *model.Brand) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateBrandQuery, data.Name.Uz, data.Name.Ru, data.Name.En, data.IsActive, data.UpdatedAt, data.ID)
	return err
}

// Delete detaches the brand from categories, clients and posts, then removes
// it. The steps run sequentially without a transaction.
func (s *SQL) Delete(ctx context.Context, id string) error {
	for _, q := range []string{unsetCategoryBrandQuery, unsetClientBrandQuery, deletePostBrandsQuery, deleteBrandQuery} {
		if _, err := s.conn.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	return nil
}
