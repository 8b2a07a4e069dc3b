package client

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

type ClientRepository interface {
	Create(ctx context.Context, data *model.Client) (*model.Client, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Client, int64, error)
	GetByID(ctx context.Context, id string) (*model.Client, error)
	Update(ctx context.Context, data *model.Client) error
	Delete(ctx context.Context, id string) error
}

func NewClientRepository(conn *sqlx.DB) ClientRepository {
	return &SQL{conn: conn}
}

const (
	insertClientQuery = `INSERT INTO clients (id, name_uz, name_ru, name_en, image, brand_id, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?, ?)`
	updateClientQuery = `UPDATE clients SET name_uz = ?, name_ru = ?, name_en = ?, image = ?, brand_id = NULLIF(?, ''), is_active = ?, updated_at = ? WHERE id = ?`
	deleteClientQuery = `DELETE FROM clients WHERE id = ?`
)

var (
	clientColumns  = "cl.id, " + query.NamedColumns("cl", "name") + ", cl.image, COALESCE(cl.brand_id, '') AS brand_id, cl.is_active, cl.created_at, cl.updated_at"
	getClientQuery = "SELECT " + clientColumns + " FROM clients cl WHERE cl.id = ?"
)

func (s *SQL) Create(ctx context.Context, data *model.Client) (*model.Client, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	_, err := s.conn.ExecContext(ctx, insertClientQuery, id, data.Name.Uz, data.Name.Ru, data.Name.En, data.Image, data.BrandID, data.IsActive, now, now)
	if err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter model.ListFilter) ([]model.Client, int64, error) {
	qb := query.New("clients", "cl").
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

	items := make([]model.Client, 0)
	selectQuery, args := qb.SelectSQL(clientColumns)
	if err := s.conn.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, 0, err
	}
	if err := s.attachBrands(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Client, error) {
	var item model.Client
	if err := s.conn.QueryRowxContext(ctx, getClientQuery, id).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items := []model.Client{item}
	if err := s.attachBrands(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *SQL) attachBrands(ctx context.Context, items []model.Client) error {
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

func (s *SQL) Update(ctx context.Context, data *model.Client) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateClientQuery, data.Name.Uz, data.Name.Ru, data.Name.En, data.Image, data.BrandID, data.IsActive, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, deleteClientQuery, id)
	return err
}
