package post

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ShohjahonSohibov/Aberno/model"
	"github.com/ShohjahonSohibov/Aberno/repository/query"
	txrepo "github.com/ShohjahonSohibov/Aberno/repository/tx"
)

type SQL struct {
	conn *sqlx.DB
	tx   txrepo.TxRepository
}

type PostRepository interface {
	Create(ctx context.Context, data *model.Post, refs model.PostRefs) (*model.Post, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Post, int64, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	AuthorIDs(ctx context.Context, id string) ([]string, error)
	// Update rewrites the row and replaces every non-nil reference set.
	Update(ctx context.Context, data *model.Post, refs model.PostRefs) error
	Delete(ctx context.Context, id string) error
}

func NewPostRepository(conn *sqlx.DB) PostRepository {
	return &SQL{conn: conn, tx: txrepo.NewTxRepository(conn)}
}

// link describes one multi-valued reference of a post.
type link struct {
	table  string
	column string
}

var (
	authorLink   = link{table: "post_authors", column: "admin_id"}
	categoryLink = link{table: "post_categories_map", column: "category_id"}
	brandLink    = link{table: "post_brands", column: "brand_id"}
	tagLink      = link{table: "post_tags", column: "tag_id"}
)

const (
	insertPostQuery = `INSERT INTO posts (id, title_uz, title_ru, title_en, content_uz, content_ru, content_en, image,
published_at, scheduled_at, status, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	updatePostQuery = `UPDATE posts SET title_uz = ?, title_ru = ?, title_en = ?, content_uz = ?, content_ru = ?, content_en = ?,
image = ?, published_at = ?, scheduled_at = ?, status = ?, is_active = ?, updated_at = ? WHERE id = ?`
	unsetCommentPostQuery = `UPDATE comments SET post_id = NULL WHERE post_id = ?`
	deletePostQuery       = `DELETE FROM posts WHERE id = ?`
	authorIDsQuery        = `SELECT admin_id FROM post_authors WHERE post_id = ?`

	postAuthorsQuery = `SELECT j.post_id AS owner_id, a.id, a.username FROM post_authors j
JOIN admins a ON a.id = j.admin_id WHERE j.post_id IN (?)`
)

var (
	postColumns = "p.id, " + query.NamedColumns("p", "title") + ", " +
		"COALESCE(p.content_uz, '') AS `content.uz`, COALESCE(p.content_ru, '') AS `content.ru`, COALESCE(p.content_en, '') AS `content.en`, " +
		"p.image, p.published_at, p.scheduled_at, p.status, p.is_active, p.created_at, p.updated_at"
	getPostQuery = "SELECT " + postColumns + " FROM posts p WHERE p.id = ?"

	postCategoriesQuery = ownedRefsQuery(categoryLink, "post_categories")
	postBrandsQuery     = ownedRefsQuery(brandLink, "brands")
	postTagsQuery       = ownedRefsQuery(tagLink, "tags")
)

// ownedRefsQuery joins a link table to the active documents it points at.
func ownedRefsQuery(l link, table string) string {
	return "SELECT j.post_id AS owner_id, t.id, " + query.NamedColumns("t", "name") +
		" FROM " + l.table + " j JOIN " + table + " t ON t.id = j." + l.column +
		" WHERE t.is_active = 1 AND j.post_id IN (?)"
}

func (s *SQL) Create(ctx context.Context, data *model.Post, refs model.PostRefs) (*model.Post, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	err := s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, insertPostQuery, id,
			data.Title.Uz, data.Title.Ru, data.Title.En,
			data.Content.Uz, data.Content.Ru, data.Content.En,
			data.Image, data.PublishedAt, data.ScheduledAt, data.Status, data.IsActive, now, now)
		if err != nil {
			return err
		}
		return replaceLinks(ctx, tx, id, refs)
	})
	if err != nil {
		return nil, err
	}

	data.ID = id
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter model.ListFilter) ([]model.Post, int64, error) {
	qb := query.New("posts", "p").
		Bool("is_active", filter.IsActive).
		Equal("status", filter.Status).
		Has(authorLink.table, "post_id", authorLink.column, filter.Authors).
		Has(categoryLink.table, "post_id", categoryLink.column, filter.Categories).
		Has(tagLink.table, "post_id", tagLink.column, filter.Tags).
		Has(brandLink.table, "post_id", brandLink.column, filter.Brands).
		Between("published_at", filter.PublishedFrom, filter.PublishedTo).
		Between("scheduled_at", filter.ScheduledFrom, filter.ScheduledTo).
		Search(filter.Search, query.LocalizedColumns("title", "content")...).
		OrderBy("created_at", filter.SortByCreatedAt).
		Paginate(filter.Page, filter.Limit)

	var total int64
	countQuery, countArgs := qb.CountSQL()
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Post, 0)
	selectQuery, args := qb.SelectSQL(postColumns)
	if err := s.conn.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, 0, err
	}
	if err := s.populate(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID returns nil, nil when the post does not exist.
func (s *SQL) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := s.conn.QueryRowxContext(ctx, getPostQuery, id).StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items := []model.Post{post}
	if err := s.populate(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// populate resolves authors, categories, brands and tags for a page of posts.
func (s *SQL) populate(ctx context.Context, items []model.Post) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}

	authors, err := query.LoadByIDs[query.OwnedAuthor](ctx, s.conn, postAuthorsQuery, ids)
	if err != nil {
		return err
	}
	categories, err := query.LoadByIDs[query.OwnedRef](ctx, s.conn, postCategoriesQuery, ids)
	if err != nil {
		return err
	}
	brands, err := query.LoadByIDs[query.OwnedRef](ctx, s.conn, postBrandsQuery, ids)
	if err != nil {
		return err
	}
	tags, err := query.LoadByIDs[query.OwnedRef](ctx, s.conn, postTagsQuery, ids)
	if err != nil {
		return err
	}

	byAuthor := query.GroupAuthors(authors)
	byCategory := query.GroupRefs(categories)
	byBrand := query.GroupRefs(brands)
	byTag := query.GroupRefs(tags)
	for i := range items {
		id := items[i].ID
		items[i].Authors = nonNil(byAuthor[id])
		items[i].Categories = nonNil(byCategory[id])
		items[i].Brands = nonNil(byBrand[id])
		items[i].Tags = nonNil(byTag[id])
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (s *SQL) AuthorIDs(ctx context.Context, id string) ([]string, error) {
	ids := make([]string, 0)
	if err := s.conn.SelectContext(ctx, &ids, authorIDsQuery, id); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *SQL) Update(ctx context.Context, data *model.Post, refs model.PostRefs) error {
	data.UpdatedAt = time.Now().UTC()
	return s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, updatePostQuery,
			data.Title.Uz, data.Title.Ru, data.Title.En,
			data.Content.Uz, data.Content.Ru, data.Content.En,
			data.Image, data.PublishedAt, data.ScheduledAt, data.Status, data.IsActive, data.UpdatedAt, data.ID)
		if err != nil {
			return err
		}
		return replaceLinks(ctx, tx, data.ID, refs)
	})
}

func replaceLinks(ctx context.Context, exec sqlx.ExecerContext, postID string, refs model.PostRefs) error {
	sets := []struct {
		l   link
		ids []string
	}{
		{authorLink, refs.Authors},
		{categoryLink, refs.Categories},
		{brandLink, refs.Brands},
		{tagLink, refs.Tags},
	}
	for _, set := range sets {
		if set.ids == nil {
			continue
		}
		if err := setLinks(ctx, exec, postID, set.l, set.ids); err != nil {
			return err
		}
	}
	return nil
}

func setLinks(ctx context.Context, exec sqlx.ExecerContext, postID string, l link, ids []string) error {
	if _, err := exec.ExecContext(ctx, "DELETE FROM "+l.table+" WHERE post_id = ?", postID); err != nil {
		return err
	}
	for _, id := range query.Unique(ids) {
		if _, err := exec.ExecContext(ctx, "INSERT INTO "+l.table+" (post_id, "+l.column+") VALUES (?, ?)", postID, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete drops the post's links and detaches its comments before removing it.
func (s *SQL) Delete(ctx context.Context, id string) error {
	return s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, l := range []link{authorLink, categoryLink, brandLink, tagLink} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+l.table+" WHERE post_id = ?", id); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, unsetCommentPostQuery, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, deletePostQuery, id)
		return err
	})
}
