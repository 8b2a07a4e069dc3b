package transport

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
)

// parseListFilter reads the recognized list query parameters. Unknown parameters are ignored;
// malformed recognized ones fail with ErrInvalidRequest.
func parseListFilter(q url.Values) (model.ListFilter, error) {
	var (
		f   model.ListFilter
		err error
	)
	invalid := errors.SetCustomError(constant.ErrInvalidRequest)

	switch q.Get("isActive") {
	case "":
	case "true":
		v := true
		f.IsActive = &v
	case "false":
		v := false
		f.IsActive = &v
	default:
		return f, invalid
	}

	if f.Page, err = positiveInt(q.Get("page")); err != nil {
		return f, invalid
	}
	if f.Limit, err = positiveInt(q.Get("limit")); err != nil {
		return f, invalid
	}
	if f.SortRate, err = direction(q.Get("sortRate")); err != nil {
		return f, invalid
	}
	if f.SortByCreatedAt, err = direction(q.Get("sortByCreatedAt")); err != nil {
		return f, invalid
	}

	for _, p := range []struct {
		key string
		dst **time.Time
	}{
		{"publishedStartTime", &f.PublishedFrom},
		{"publishedEndTime", &f.PublishedTo},
		{"scheduledStartTime", &f.ScheduledFrom},
		{"scheduledEndTime", &f.ScheduledTo},
	} {
		if *p.dst, err = parseTime(q.Get(p.key)); err != nil {
			return f, invalid
		}
	}

	f.Status = strings.TrimSpace(q.Get("status"))
	f.Search = strings.TrimSpace(q.Get("search"))
	f.Authors = splitIDs(q.Get("author"))
	f.Categories = splitIDs(q.Get("category"))
	f.Tags = splitIDs(q.Get("tag"))
	f.Brands = splitIDs(q.Get("brand"))
	f.PostID = strings.TrimSpace(q.Get("postId"))
	f.ProductID = strings.TrimSpace(q.Get("productId"))

	return f, nil
}

func positiveInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return n, nil
}

func direction(raw string) (model.Direction, error) {
	switch strings.ToLower(raw) {
	case "":
		return "", nil
	case string(model.Asc):
		return model.Asc, nil
	case string(model.Desc):
		return model.Desc, nil
	}
	return "", errors.SetCustomError(constant.ErrInvalidRequest)
}

// parseTime accepts RFC3339 or a bare YYYY-MM-DD date (midnight UTC).
func parseTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, errors.SetCustomError(constant.ErrInvalidRequest)
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
