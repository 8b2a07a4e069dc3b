package notification

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

type NotificationRepository interface {
	Create(ctx context.Context, data *model.Notification) (*model.Notification, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Notification, int64, error)
	GetByID(ctx context.Context, id string) (*model.Notification, error)
	Update(ctx context.Context, data *model.Notification) error
	Delete(ctx context.Context, id string) error
}

func NewNotificationRepository(conn *sqlx.DB) NotificationRepository {
	return &SQL{conn: conn}
}

const (
	notificationColumns     = "n.id, n.message, COALESCE(n.sender_id, '') AS sender_id, n.created_at, n.updated_at"
	getNotificationQuery    = "SELECT " + notificationColumns + " FROM notifications n WHERE n.id = ?"
	insertNotificationQuery = `INSERT INTO notifications (id, message, sender_id, created_at, updated_at) VALUES (?, ?, NULLIF(?, ''), ?, ?)`
	updateNotificationQuery = `UPDATE notifications SET message = ?, updated_at = ? WHERE id = ?`
	deleteNotificationQuery = `DELETE FROM notifications WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.Notification) (*model.Notification, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	if _, err := s.conn.ExecContext(ctx, insertNotificationQuery, id, data.Message, data.SenderID, now, now); err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter model.ListFilter) ([]model.Notification, int64, error) {
	qb := query.New("notifications", "n").
		Search(filter.Search, "message").
		OrderBy("created_at", filter.SortByCreatedAt).
		Paginate(filter.Page, filter.Limit)

	var total int64
	countQuery, countArgs := qb.CountSQL()
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Notification, 0)
	selectQuery, args := qb.SelectSQL(notificationColumns)
	if err := s.conn.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	var item model.Notification
	if err := s.conn.QueryRowxContext(ctx, getNotificationQuery, id).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) Update(ctx context.Context, data *model.Notification) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateNotificationQuery, data.Message, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, deleteNotificationQuery, id)
	return err
}
