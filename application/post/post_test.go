package post_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apppost "github.com/ShohjahonSohibov/Aberno/application/post"
	"github.com/ShohjahonSohibov/Aberno/constant"
	commentmocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/comment"
	postmocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/post"
	"github.com/ShohjahonSohibov/Aberno/model"
	cerr "github.com/ShohjahonSohibov/Aberno/utils/errors"
)

type fields struct {
	postRepo    *postmocks.PostRepository
	commentRepo *commentmocks.CommentRepository
}

func newFields(t *testing.T) fields {
	return fields{
		postRepo:    postmocks.NewPostRepository(t),
		commentRepo: commentmocks.NewCommentRepository(t),
	}
}

var title = model.LocalizedText{Uz: "Sarlavha", En: "Title"}

func TestPostApp_CreatePost(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.PostRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: caller becomes the author",
			req:  &model.PostRequest{Title: title, Content: title, Tags: []string{"t-1"}},
			mockCall: func(f fields) {
				f.postRepo.On("Create", mock.Anything,
					mock.MatchedBy(func(p *model.Post) bool {
						return p.Status == constant.PostStatusDraft && p.IsActive && p.PublishedAt != nil
					}),
					model.PostRefs{Authors: []string{"admin-1"}, Tags: []string{"t-1"}},
				).Return(&model.Post{ID: "p-1"}, nil).Once()
				f.postRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Post{ID: "p-1", Title: title}, nil).Once()
			},
		},
		{
			name: "success: explicit authors kept",
			req:  &model.PostRequest{Title: title, Content: title, Author: []string{"admin-2"}, Status: "published"},
			mockCall: func(f fields) {
				f.postRepo.On("Create", mock.Anything,
					mock.MatchedBy(func(p *model.Post) bool { return p.Status == constant.PostStatusPublished }),
					model.PostRefs{Authors: []string{"admin-2"}},
				).Return(&model.Post{ID: "p-1"}, nil).Once()
				f.postRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Post{ID: "p-1"}, nil).Once()
			},
		},
		{
			name:     "error: title required",
			req:      &model.PostRequest{Content: title},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := apppost.NewPostApp(f.postRepo, f.commentRepo).CreatePost(context.Background(), "admin-1", tt.req)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "p-1", got.ID)
		})
	}
}

func TestPostApp_GetPost_WithComments(t *testing.T) {
	f := newFields(t)
	f.postRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Post{ID: "p-1"}, nil).Once()
	f.commentRepo.On("List", mock.Anything, mock.MatchedBy(func(fl model.ListFilter) bool {
		return fl.PostID == "p-1" && fl.IsActive != nil && *fl.IsActive && fl.Limit == model.MaxLimit
	})).Return([]model.Comment{{ID: "c-1"}}, int64(1), nil).Once()

	got, err := apppost.NewPostApp(f.postRepo, f.commentRepo).GetPost(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "c-1", got.Comments[0].ID)
}

func TestPostApp_UpdatePost(t *testing.T) {
	tests := []struct {
		name     string
		callerID string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: author updates title only",
			callerID: "admin-1",
			mockCall: func(f fields) {
				f.postRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Post{ID: "p-1", Title: title, Status: constant.PostStatusDraft}, nil).Twice()
				f.postRepo.On("AuthorIDs", mock.Anything, "p-1").Return([]string{"admin-1", "admin-3"}, nil).Once()
				f.postRepo.On("Update", mock.Anything,
					mock.MatchedBy(func(p *model.Post) bool { return p.Title.En == "New" && p.Title.Uz == "Sarlavha" }),
					model.PostRefs{},
				).Return(nil).Once()
			},
		},
		{
			name:     "error: not an author",
			callerID: "admin-2",
			mockCall: func(f fields) {
				f.postRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Post{ID: "p-1"}, nil).Once()
				f.postRepo.On("AuthorIDs", mock.Anything, "p-1").Return([]string{"admin-1"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:     "error: not found",
			callerID: "admin-1",
			mockCall: func(f fields) {
				f.postRepo.On("GetByID", mock.Anything, "p-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			_, err := apppost.NewPostApp(f.postRepo, f.commentRepo).UpdatePost(context.Background(), tt.callerID, "p-1",
				&model.PostRequest{Title: model.LocalizedText{En: "New"}})
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostApp_DeletePost(t *testing.T) {
	f := newFields(t)
	app := apppost.NewPostApp(f.postRepo, f.commentRepo)

	f.postRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Post{ID: "p-1"}, nil).Twice()
	f.postRepo.On("AuthorIDs", mock.Anything, "p-1").Return([]string{"admin-1"}, nil).Twice()
	f.postRepo.On("Delete", mock.Anything, "p-1").Return(nil).Once()

	assert.True(t, cerr.Is(app.DeletePost(context.Background(), "u-1", "p-1"), constant.ErrForbidden))
	assert.NoError(t, app.DeletePost(context.Background(), "admin-1", "p-1"))
}
