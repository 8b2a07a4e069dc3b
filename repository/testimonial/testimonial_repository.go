package testimonial

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

type TestimonialRepository interface {
	Create(ctx context.Context, data *model.Testimonial) (*model.Testimonial, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Testimonial, int64, error)
	GetByID(ctx context.Context, id string) (*model.Testimonial, error)
	Update(ctx context.Context, data *model.Testimonial) error
	Delete(ctx context.Context, id string) error
}

func NewTestimonialRepository(conn *sqlx.DB) TestimonialRepository {
	return &SQL{conn: conn}
}

const (
	insertTestimonialQuery = `INSERT INTO testimonials (id, fullname_uz, fullname_ru, fullname_en, title_uz, title_ru, title_en,
content_uz, content_ru, content_en, image, rate, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	updateTestimonialQuery = `UPDATE testimonials SET fullname_uz = ?, fullname_ru = ?, fullname_en = ?, title_uz = ?, title_ru = ?, title_en = ?,
content_uz = ?, content_ru = ?, content_en = ?, image = ?, rate = ?, is_active = ?, updated_at = ? WHERE id = ?`
	deleteTestimonialQuery = `DELETE FROM testimonials WHERE id = ?`
)

var (
	testimonialColumns = "t.id, " + query.NamedColumns("t", "fullname") + ", " + query.NamedColumns("t", "title") + ", " +
		"COALESCE(t.content_uz, '') AS `content.uz`, COALESCE(t.content_ru, '') AS `content.ru`, COALESCE(t.content_en, '') AS `content.en`, " +
		"t.image, t.rate, t.is_active, t.created_at, t.updated_at"
	getTestimonialQuery = "SELECT " + testimonialColumns + " FROM testimonials t WHERE t.id = ?"
)

func (s *SQL) Create(ctx context.Context, data *model.Testimonial) (*model.Testimonial, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	_, err := s.conn.ExecContext(ctx, insertTestimonialQuery, id,
		data.Fullname.Uz, data.Fullname.Ru, data.Fullname.En,
		data.Title.Uz, data.Title.Ru, data.Title.En,
		data.Content.Uz, data.Content.Ru, data.Content.En,
		data.Image, data.Rate, data.IsActive, now, now)
	if err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter model.ListFilter) ([]model.Testimonial, int64, error) {
	qb := query.New("testimonials", "t").
		Bool("is_active", filter.IsActive).
		Search(filter.Search, query.LocalizedColumns("fullname", "title")...).
		OrderBy("created_at", filter.SortByCreatedAt).
		OrderBy("rate", filter.SortRate).
		Paginate(filter.Page, filter.Limit)

	var total int64
	countQuery, countArgs := qb.CountSQL()
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Testimonial, 0)
	selectQuery, args := qb.SelectSQL(testimonialColumns)
	if err := s.conn.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Testimonial, error) {
	var item model.Testimonial
	if err := s.conn.QueryRowxContext(ctx, getTestimonialQuery, id).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) Update(ctx context.Context, data *model.Testimonial) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateTestimonialQuery,
		data.Fullname.Uz, data.Fullname.Ru, data.Fullname.En,
		data.Title.Uz, data.Title.Ru, data.Title.En,
		data.Content.Uz, data.Content.Ru, data.Content.En,
		data.Image, data.Rate, data.IsActive, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, deleteTestimonialQuery, id)
	return err
}
