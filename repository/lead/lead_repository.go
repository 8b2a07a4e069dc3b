package lead

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	"github.com/ShohjahonSohibov/Aberno/repository/query"
)

type SQL struct {
	conn *sqlx.DB
}

type LeadRepository interface {
	Create(ctx context.Context, data *model.Lead) (*model.Lead, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Lead, int64, error)
	GetByID(ctx context.Context, id string) (*model.Lead, error)
	Update(ctx context.Context, data *model.Lead) error
	UpdateStatus(ctx context.Context, id string, status constant.LeadStatus) error
	Delete(ctx context.Context, id string) error
}

func NewLeadRepository(conn *sqlx.DB) LeadRepository {
	return &SQL{conn: conn}
}

const (
	leadColumns           = "l.id, l.name, COALESCE(l.text, '') AS text, l.phone, l.email, l.status, l.is_active, l.created_at, l.updated_at"
	insertLeadQuery       = `INSERT INTO leads (id, name, text, phone, email, status, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getLeadQuery          = "SELECT " + leadColumns + " FROM leads l WHERE l.id = ?"
	updateLeadQuery       = `UPDATE leads SET name = ?, text = ?, phone = ?, email = ?, status = ?, is_active = ?, updated_at = ? WHERE id = ?`
	updateLeadStatusQuery = `UPDATE leads SET status = ?, updated_at = ? WHERE id = ?`
	deleteLeadQuery       = `DELETE FROM leads WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.Lead) (*model.Lead, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	_, err := s.conn.ExecContext(ctx, insertLeadQuery, id, data.Name, data.Text, data.Phone, data.Email, data.Status, data.IsActive, now, now)
	if err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter model.ListFilter) ([]model.Lead, int64, error) {
	qb := query.New("leads", "l").
		Bool("is_active", filter.IsActive).
		Equal("status", filter.Status).
		Search(filter.Search, "name", "text", "phone", "email").
		OrderBy("created_at", filter.SortByCreatedAt).
		Paginate(filter.Page, filter.Limit)

	var total int64
	countQuery, countArgs := qb.CountSQL()
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Lead, 0)
	selectQuery, args := qb.SelectSQL(leadColumns)
	if err := s.conn.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Lead, error) {
	var lead model.Lead
	if err := s.conn.QueryRowxContext(ctx, getLeadQuery, id).StructScan(&lead); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

func (s *SQL) Update(ctx context.Context, data *model.Lead) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateLeadQuery, data.Name, data.Text, data.Phone, data.Email, data.Status, data.IsActive, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) UpdateStatus(ctx context.Context, id string, status constant.LeadStatus) error {
	_, err := s.conn.ExecContext(ctx, updateLeadStatusQuery, status, time.Now().UTC(), id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, deleteLeadQuery, id)
	return err
}
