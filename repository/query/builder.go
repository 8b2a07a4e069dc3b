// Package query turns list options into parameterized SQL shared by every
// list repository. User input only ever travels as bind arguments.
package query

import (
	"strings"
	"time"

	"github.com/ShohjahonSohibov/Aberno/model"
)

type Builder struct {
	table  string
	alias  string
	where  []string
	args   []any
	orders []string
	limit  int
	offset int
	paged  bool
}

// New starts a query over table, referenced in SQL as alias.
func New(table, alias string) *Builder {
	return &Builder{table: table, alias: alias}
}

func (b *Builder) col(c string) string {
	if b.alias == "" || strings.ContainsAny(c, ".(") {
		return c
	}
	return b.alias + "." + c
}

// Where appends a raw condition. Only for fixed SQL; values go in args.
func (b *Builder) Where(cond string, args ...any) *Builder {
	b.where = append(b.where, cond)
	b.args = append(b.args, args...)
	return b
}

func (b *Builder) Bool(column string, v *bool) *Builder {
	if v == nil {
		return b
	}
	return b.Where(b.col(column)+" = ?", *v)
}

func (b *Builder) Equal(column, v string) *Builder {
	if v == "" {
		return b
	}
	return b.Where(b.col(column)+" = ?", v)
}

// Search matches term case-insensitively as a substring of any of columns.
func (b *Builder) Search(term string, columns ...string) *Builder {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return b
	}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, c := range columns {
		parts = append(parts, "LOWER("+b.col(c)+") LIKE ?")
		args = append(args, pattern)
	}
	return b.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// In restricts a single-valued reference column to ids.
func (b *Builder) In(column string, ids []string) *Builder {
	ids = Unique(ids)
	if len(ids) == 0 {
		return b
	}
	return b.Where(b.col(column)+" IN ("+placeholders(len(ids))+")", toArgs(ids)...)
}

// Has restricts to rows linked through joinTable to at least one of ids.
func (b *Builder) Has(joinTable, ownerColumn, refColumn string, ids []string) *Builder {
	ids = Unique(ids)
	if len(ids) == 0 {
		return b
	}
	cond := "EXISTS (SELECT 1 FROM " + joinTable + " j WHERE j." + ownerColumn + " = " + b.col("id") +
		" AND j." + refColumn + " IN (" + placeholders(len(ids)) + "))"
	return b.Where(cond, toArgs(ids)...)
}

// Between bounds column inclusively; either bound may be nil.
func (b *Builder) Between(column string, from, to *time.Time) *Builder {
	if from != nil {
		b.Where(b.col(column)+" >= ?", *from)
	}
	if to != nil {
		b.Where(b.col(column)+" <= ?", *to)
	}
	return b
}

func (b *Builder) OrderBy(column string, dir model.Direction) *Builder {
	d := "DESC"
	if dir == model.Asc {
		d = "ASC"
	}
	b.orders = append(b.orders, b.col(column)+" "+d)
	return b
}

// Paginate selects the 1-indexed page of size limit.
func (b *Builder) Paginate(page, limit int) *Builder {
	if page < 1 {
		page = model.DefaultPage
	}
	if limit < 1 {
		limit = model.DefaultLimit
	}
	if limit > model.MaxLimit {
		limit = model.MaxLimit
	}
	b.limit = limit
	b.offset = (page - 1) * limit
	b.paged = true
	return b
}

// WhereSQL returns the WHERE clause (with leading space) and its args.
func (b *Builder) WhereSQL() (string, []any) {
	if len(b.where) == 0 {
		return "", nil
	}
	args := make([]any, len(b.args))
	copy(args, b.args)
	return " WHERE " + strings.Join(b.where, " AND "), args
}

func (b *Builder) from() string {
	if b.alias == "" {
		return b.table
	}
	return b.table + " " + b.alias
}

// SelectSQL renders the page query for columns.
func (b *Builder) SelectSQL(columns string) (string, []any) {
	where, args := b.WhereSQL()
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(columns)
	sb.WriteString(" FROM ")
	sb.WriteString(b.from())
	sb.WriteString(where)
	if len(b.orders) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orders, ", "))
		// id breaks ties so pages never overlap
		sb.WriteString(", " + b.col("id") + " DESC")
	}
	if b.paged {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, b.limit, b.offset)
	}
	return sb.String(), args
}

// CountSQL renders the total-match query; it ignores ordering and the page window.
func (b *Builder) CountSQL() (string, []any) {
	where, args := b.WhereSQL()
	return "SELECT COUNT(*) FROM " + b.from() + where, args
}

// Unique drops blanks and duplicates, keeping first-seen order.
func Unique(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func toArgs(ids []string) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
