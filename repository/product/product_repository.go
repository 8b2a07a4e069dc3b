package product

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

type ProductRepository interface {
	Create(ctx context.Context, data *model.Product) (*model.Product, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Product, int64, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, data *model.Product) error
	Delete(ctx context.Context, id string) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	insertProductQuery = `INSERT INTO products (id, title_uz, title_ru, title_en, short_description_uz, short_description_ru, short_description_en,
description_uz, description_ru, description_en, image, category_id, rate, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?, ?, ?)`
	updateProductQuery = `UPDATE products SET title_uz = ?, title_ru = ?, title_en = ?, short_description_uz = ?, short_description_ru = ?,
short_description_en = ?, description_uz = ?, description_ru = ?, description_en = ?, image = ?, category_id = NULLIF(?, ''),
rate = ?, is_active = ?, updated_at = ? WHERE id = ?`
	unsetCommentProductQuery = `UPDATE comments SET product_id = NULL WHERE product_id = ?`
	deleteProductQuery       = `DELETE FROM products WHERE id = ?`
)

var (
	productColumns = "p.id, " + query.NamedColumns("p", "title") + ", " +
		"COALESCE(p.short_description_uz, '') AS `short_description.uz`, COALESCE(p.short_description_ru, '') AS `short_description.ru`, " +
		"COALESCE(p.short_description_en, '') AS `short_description.en`, COALESCE(p.description_uz, '') AS `description.uz`, " +
		"COALESCE(p.description_ru, '') AS `description.ru`, COALESCE(p.description_en, '') AS `description.en`, " +
		"p.image, COALESCE(p.category_id, '') AS category_id, p.rate, p.is_active, p.created_at, p.updated_at"
	getProductQuery = "SELECT " + productColumns + " FROM products p WHERE p.id = ?"
)

func (s *SQL) Create(ctx context.Context, data *model.Product) (*model.Product, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	_, err := s.conn.ExecContext(ctx, insertProductQuery, id,
		data.Title.Uz, data.Title.Ru, data.Title.En,
		data.ShortDescription.Uz, data.ShortDescription.Ru, data.ShortDescription.En,
		data.Description.Uz, data.Description.Ru, data.Description.En,
		data.Image, data.CategoryID, data.Rate, data.IsActive, now, now)
	if err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter model.ListFilter) ([]model.Product, int64, error) {
	qb := query.New("products", "p").
		Bool("is_active", filter.IsActive).
		In("category_id", filter.Categories).
		Search(filter.Search, query.LocalizedColumns("title", "short_description")...).
		OrderBy("created_at", filter.SortByCreatedAt).
		OrderBy("rate", filter.SortRate).
		Paginate(filter.Page, filter.Limit)

	var total int64
	countQuery, countArgs := qb.CountSQL()
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Product, 0)
	selectQuery, args := qb.SelectSQL(productColumns)
	if err := s.conn.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, 0, err
	}
	if err := s.attachCategories(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID returns nil, nil when the product does not exist.
func (s *SQL) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, id).StructScan(&product); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items := []model.Product{product}
	if err := s.attachCategories(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *SQL) attachCategories(ctx context.Context, items []model.Product) error {
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.CategoryID)
	}
	refs, err := query.LoadByIDs[model.Ref](ctx, s.conn, query.ActiveRefsQuery("categories"), ids)
	if err != nil {
		return err
	}
	byID := query.RefsByID(refs)
	for i := range items {
		items[i].Category = byID[items[i].CategoryID]
	}
	return nil
}

func (s *SQL) Update(ctx context.Context, data *model.Product) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateProductQuery,
		data.Title.Uz, data.Title.Ru, data.Title.En,
		data.ShortDescription.Uz, data.ShortDescription.Ru, data.ShortDescription.En,
		data.Description.Uz, data.Description.Ru, data.Description.En,
		data.Image, data.CategoryID, data.Rate, data.IsActive, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	if _, err := s.conn.ExecContext(ctx, unsetCommentProductQuery, id); err != nil {
		return err
	}
	_, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	return err
}
