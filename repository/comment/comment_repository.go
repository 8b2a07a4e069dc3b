package comment

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

type CommentRepository interface {
	Create(ctx context.Context, data *model.Comment) (*model.Comment, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Comment, int64, error)
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	Update(ctx context.Context, data *model.Comment) error
	Delete(ctx context.Context, id string) error
}

func NewCommentRepository(conn *sqlx.DB) CommentRepository {
	return &SQL{conn: conn}
}

const (
	commentColumns = "cm.id, cm.content, cm.rate, cm.is_active, cm.author_id, COALESCE(cm.post_id, '') AS post_id, " +
		"COALESCE(cm.product_id, '') AS product_id, cm.created_at, cm.updated_at"
	getCommentQuery    = "SELECT " + commentColumns + " FROM comments cm WHERE cm.id = ?"
	insertCommentQuery = `INSERT INTO comments (id, content, rate, is_active, author_id, post_id, product_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?)`
	updateCommentQuery = `UPDATE comments SET content = ?, rate = ?, is_active = ?, updated_at = ? WHERE id = ?`
	deleteCommentQuery = `DELETE FROM comments WHERE id = ?`

	commentAuthorsQuery = `SELECT u.id, u.fullname, COALESCE(u.email, '') AS email, COALESCE(u.phone, '') AS phone FROM users u WHERE u.id IN (?)`
)

func (s *SQL) Create(ctx context.Context, data *model.Comment) (*model.Comment, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	_, err := s.conn.ExecContext(ctx, insertCommentQuery, id, data.Content, data.Rate, data.IsActive, data.AuthorID, data.PostID, data.ProductID, now, now)
	if err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter model.ListFilter) ([]model.Comment, int64, error) {
	qb := query.New("comments", "cm").
		Bool("is_active", filter.IsActive).
		Equal("post_id", filter.PostID).
		Equal("product_id", filter.ProductID).
		Search(filter.Search, "content").
		OrderBy("created_at", filter.SortByCreatedAt).
		OrderBy("rate", filter.SortRate).
		Paginate(filter.Page, filter.Limit)

	var total int64
	countQuery, countArgs := qb.CountSQL()
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Comment, 0)
	selectQuery, args := qb.SelectSQL(commentColumns)
	if err := s.conn.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, 0, err
	}
	if err := s.attachAuthors(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var item model.Comment
	if err := s.conn.QueryRowxContext(ctx, getCommentQuery, id).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items := []model.Comment{item}
	if err := s.attachAuthors(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *SQL) attachAuthors(ctx context.Context, items []model.Comment) error {
	ids := make([]string, 0, len(items))
	for _, c := range items {
		ids = append(ids, c.AuthorID)
	}
	users, err := query.LoadByIDs[model.UserRef](ctx, s.conn, commentAuthorsQuery, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]*model.UserRef, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for i := range items {
		items[i].Author = byID[items[i].AuthorID]
	}
	return nil
}

func (s *SQL) Update(ctx context.Context, data *model.Comment) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateCommentQuery, data.Content, data.Rate, data.IsActive, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, deleteCommentQuery, id)
	return err
}
