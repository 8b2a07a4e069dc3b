package query

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ShohjahonSohibov/Aberno/model"
)

// OwnedRef is a populated reference tagged with the document that points at it.
type OwnedRef struct {
	OwnerID string `db:"owner_id"`
	model.Ref
}

type OwnedAuthor struct {
	OwnerID string `db:"owner_id"`
	model.AuthorRef
}

// LoadByIDs runs q, whose single "IN (?)" is expanded over ids, and scans
// every row into T. Join-on-read for a page of documents costs one query.
func LoadByIDs[T any](ctx context.Context, db sqlx.ExtContext, q string, ids []string) ([]T, error) {
	ids = Unique(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	expanded, args, err := sqlx.In(q, ids)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := sqlx.SelectContext(ctx, db, &out, db.Rebind(expanded), args...); err != nil {
		return nil, err
	}
	return out, nil
}

// RefsByID indexes refs by their id.
func RefsByID(refs []model.Ref) map[string]*model.Ref {
	m := make(map[string]*model.Ref, len(refs))
	for i := range refs {
		m[refs[i].ID] = &refs[i]
	}
	return m
}

// GroupRefs buckets owned refs by owner id.
func GroupRefs(refs []OwnedRef) map[string][]model.Ref {
	m := make(map[string][]model.Ref)
	for _, r := range refs {
		m[r.OwnerID] = append(m[r.OwnerID], r.Ref)
	}
	return m
}

func GroupAuthors(refs []OwnedAuthor) map[string][]model.AuthorRef {
	m := make(map[string][]model.AuthorRef)
	for _, r := range refs {
		m[r.OwnerID] = append(m[r.OwnerID], r.AuthorRef)
	}
	return m
}

// NamedColumns selects a localized name as sqlx nested columns.
func NamedColumns(alias, field string) string {
	p := alias + "." + field
	return p + "_uz AS `" + field + ".uz`, " + p + "_ru AS `" + field + ".ru`, " + p + "_en AS `" + field + ".en`"
}

// LocalizedColumns lists the per-locale columns of field, for Search.
func LocalizedColumns(fields ...string) []string {
	out := make([]string, 0, len(fields)*3)
	for _, f := range fields {
		out = append(out, f+"_uz", f+"_ru", f+"_en")
	}
	return out
}

// ActiveRefsQuery selects the active documents of a named table as refs,
// ready for LoadByIDs.
func ActiveRefsQuery(table string) string {
	return "SELECT t.id, " + NamedColumns("t", "name") + " FROM " + table + " t WHERE t.is_active = 1 AND t.id IN (?)"
}
