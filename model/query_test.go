package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListFilter
		want ListFilter
	}{
		{
			name: "defaults",
			in:   ListFilter{},
			want: ListFilter{Page: 1, Limit: 10, SortByCreatedAt: Desc, SortRate: Asc},
		},
		{
			name: "keeps explicit values",
			in:   ListFilter{Page: 3, Limit: 5, SortByCreatedAt: Asc, SortRate: Desc},
			want: ListFilter{Page: 3, Limit: 5, SortByCreatedAt: Asc, SortRate: Desc},
		},
		{
			name: "caps limit",
			in:   ListFilter{Page: -2, Limit: 1000},
			want: ListFilter{Page: 1, Limit: MaxLimit, SortByCreatedAt: Desc, SortRate: Asc},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.in
			f.Normalize()
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestNewPage(t *testing.T) {
	f := ListFilter{Page: 2, Limit: 5}

	p := NewPage[int](nil, 12, f)
	assert.Equal(t, []int{}, p.Items)
	assert.Equal(t, int64(12), p.Count)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 5, f.Offset())

	assert.Equal(t, 0, NewPage([]int{}, 0, f).TotalPages)
}

func TestLocalizedText(t *testing.T) {
	l := LocalizedText{Uz: "Olma"}
	assert.False(t, l.IsEmpty())
	assert.True(t, LocalizedText{Ru: "  "}.IsEmpty())

	merged := l.Merge(LocalizedText{Ru: "Яблоко"})
	assert.Equal(t, LocalizedText{Uz: "Olma", Ru: "Яблоко"}, merged)
	assert.Equal(t, []string{"Olma", "Яблоко"}, merged.Values())
}
