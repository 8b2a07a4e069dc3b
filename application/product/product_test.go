package product_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appproduct "github.com/ShohjahonSohibov/Aberno/application/product"
	"github.com/ShohjahonSohibov/Aberno/constant"
	productmocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/product"
	"github.com/ShohjahonSohibov/Aberno/model"
	cerr "github.com/ShohjahonSohibov/Aberno/utils/errors"
)

func TestProductApp_ListProducts(t *testing.T) {
	tests := []struct {
		name      string
		filter    model.ListFilter
		mockCall  func(repo *productmocks.ProductRepository)
		wantCount int64
		wantPages int
		wantErr   bool
	}{
		{
			name:   "success: defaults applied",
			filter: model.ListFilter{Categories: []string{"c-1"}},
			mockCall: func(repo *productmocks.ProductRepository) {
				repo.On("List", mock.Anything, mock.MatchedBy(func(f model.ListFilter) bool {
					return f.Page == 1 && f.Limit == 10 && f.SortRate == model.Asc && f.SortByCreatedAt == model.Desc
				})).Return([]model.Product{{ID: "p-1"}}, int64(21), nil).Once()
			},
			wantCount: 21,
			wantPages: 3,
		},
		{
			name:   "error: store failure",
			filter: model.ListFilter{},
			mockCall: func(repo *productmocks.ProductRepository) {
				repo.On("List", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := productmocks.NewProductRepository(t)
			tt.mockCall(repo)

			got, err := appproduct.NewProductApp(repo).ListProducts(context.Background(), tt.filter)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, constant.ErrInternal))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, got.Count)
			assert.Equal(t, tt.wantPages, got.TotalPages)
		})
	}
}

func TestProductApp_UpdateProduct_Merge(t *testing.T) {
	repo := productmocks.NewProductRepository(t)
	stored := &model.Product{
		ID:       "p-1",
		Title:    model.LocalizedText{Uz: "a", Ru: "b", En: "c"},
		Image:    "/img/1.png",
		Rate:     3,
		IsActive: true,
	}
	repo.On("GetByID", mock.Anything, "p-1").Return(stored, nil).Twice()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Title == model.LocalizedText{Uz: "a", Ru: "b", En: "z"} &&
			p.Image == "/img/1.png" && p.Rate == 5 && !p.IsActive
	})).Return(nil).Once()

	rate := 5.0
	inactive := false
	_, err := appproduct.NewProductApp(repo).UpdateProduct(context.Background(), "p-1", &model.ProductRequest{
		Title:    model.LocalizedText{En: "z"},
		Rate:     &rate,
		IsActive: &inactive,
	})
	require.NoError(t, err)
}

func TestProductApp_GetProduct_NotFound(t *testing.T) {
	repo := productmocks.NewProductRepository(t)
	repo.On("GetByID", mock.Anything, "p-9").Return(nil, nil).Once()

	_, err := appproduct.NewProductApp(repo).GetProduct(context.Background(), "p-9")
	assert.True(t, cerr.Is(err, constant.ErrNotFound))
}
