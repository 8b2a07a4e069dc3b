package transport

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShohjahonSohibov/Aberno/model"
)

func TestParseListFilter(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	active := false

	tests := []struct {
		name    string
		query   string
		want    model.ListFilter
		wantErr bool
	}{
		{
			name:  "empty",
			query: "",
			want:  model.ListFilter{},
		},
		{
			name:  "paging and sort",
			query: "page=3&limit=20&sortRate=DESC&sortByCreatedAt=asc",
			want:  model.ListFilter{Page: 3, Limit: 20, SortRate: model.Desc, SortByCreatedAt: model.Asc},
		},
		{
			name:  "id lists drop blanks",
			query: "author=a1,,a2&tag=t1&brand=%20&category=c1,c2",
			want: model.ListFilter{
				Authors:    []string{"a1", "a2"},
				Tags:       []string{"t1"},
				Categories: []string{"c1", "c2"},
			},
		},
		{
			name:  "active flag and scalars",
			query: "isActive=false&status=published&search=%20phone%20&postId=p1&productId=x1",
			want: model.ListFilter{
				IsActive:  &active,
				Status:    "published",
				Search:    "phone",
				PostID:    "p1",
				ProductID: "x1",
			},
		},
		{
			name:  "dates",
			query: "publishedStartTime=2024-05-01&scheduledEndTime=2024-05-01T00:00:00Z",
			want:  model.ListFilter{PublishedFrom: &day, ScheduledTo: &day},
		},
		{name: "isActive not boolean", query: "isActive=1", wantErr: true},
		{name: "negative page", query: "page=-1", wantErr: true},
		{name: "limit not a number", query: "limit=ten", wantErr: true},
		{name: "bad sort", query: "sortRate=up", wantErr: true},
		{name: "bad date", query: "publishedEndTime=yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := parseListFilter(q)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
