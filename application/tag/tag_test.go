package tag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apptag "github.com/ShohjahonSohibov/Aberno/application/tag"
	"github.com/ShohjahonSohibov/Aberno/constant"
	tagmocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/tag"
	"github.com/ShohjahonSohibov/Aberno/model"
	cerr "github.com/ShohjahonSohibov/Aberno/utils/errors"
)

func TestCreateTag(t *testing.T) {
	name := model.LocalizedText{Uz: "yangilik", Ru: "новости", En: "news"}

	tests := []struct {
		name     string
		req      *model.NamedRequest
		mockCall func(repo *tagmocks.TagRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.NamedRequest{Name: name},
			mockCall: func(repo *tagmocks.TagRepository) {
				repo.On("ExistsByName", mock.Anything, name, "").Return(false, nil).Once()
				repo.On("Create", mock.Anything, &model.Tag{Name: name, IsActive: true}).
					Return(&model.Tag{ID: "x-1", Name: name, IsActive: true}, nil).Once()
			},
		},
		{
			name:     "error: name required",
			req:      &model.NamedRequest{},
			mockCall: func(repo *tagmocks.TagRepository) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: duplicate",
			req:  &model.NamedRequest{Name: name},
			mockCall: func(repo *tagmocks.TagRepository) {
				repo.On("ExistsByName", mock.Anything, name, "").Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := tagmocks.NewTagRepository(t)
			tt.mockCall(repo)

			got, err := apptag.NewTagApp(repo).CreateTag(context.Background(), tt.req)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x-1", got.ID)
		})
	}
}

func TestListTags(t *testing.T) {
	repo := tagmocks.NewTagRepository(t)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f model.ListFilter) bool {
		return f.Search == "new" && f.Page == 1 && f.Limit == model.MaxLimit
	})).Return([]model.Tag{{ID: "x-1"}}, int64(1), nil).Once()

	got, err := apptag.NewTagApp(repo).ListTags(context.Background(), model.ListFilter{Search: "new", Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Count)
	assert.Equal(t, 1, got.TotalPages)
}

func TestDeleteTag(t *testing.T) {
	repo := tagmocks.NewTagRepository(t)
	repo.On("GetByID", mock.Anything, "x-1").Return(&model.Tag{ID: "x-1"}, nil).Once()
	repo.On("Delete", mock.Anything, "x-1").Return(nil).Once()

	assert.NoError(t, apptag.NewTagApp(repo).DeleteTag(context.Background(), "x-1"))
}
