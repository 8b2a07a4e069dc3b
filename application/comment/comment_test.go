package comment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appcomment "github.com/ShohjahonSohibov/Aberno/application/comment"
	"github.com/ShohjahonSohibov/Aberno/constant"
	adminmocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/admin"
	commentmocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/comment"
	"github.com/ShohjahonSohibov/Aberno/model"
	utilsContext "github.com/ShohjahonSohibov/Aberno/utils/context"
	cerr "github.com/ShohjahonSohibov/Aberno/utils/errors"
)

func boolPtr(b bool) *bool { return &b }

func TestCommentApp_CreateComment(t *testing.T) {
	repo := commentmocks.NewCommentRepository(t)
	rate := 4.5
	repo.On("Create", mock.Anything, &model.Comment{
		Content: "nice", Rate: 4.5, AuthorID: "u-1", PostID: "p-1", IsActive: true,
	}).Return(&model.Comment{ID: "c-1"}, nil).Once()

	got, err := appcomment.NewCommentApp(repo, adminmocks.NewAdminRepository(t)).
		CreateComment(context.Background(), "u-1", &model.CommentRequest{Content: "nice", Rate: &rate, Post: "p-1"})
	require.NoError(t, err)
	assert.Equal(t, "c-1", got.ID)
}

func TestCommentApp_CreateComment_Roles(t *testing.T) {
	tests := []struct {
		name     string
		role     constant.Role
		mockCall func(repo *commentmocks.CommentRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: user token",
			role: constant.RoleUser,
			mockCall: func(repo *commentmocks.CommentRepository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool { return c.AuthorID == "u-1" })).
					Return(&model.Comment{ID: "c-1", AuthorID: "u-1"}, nil).Once()
			},
		},
		{
			name:     "error: admin token cannot author a comment",
			role:     constant.RoleAdmin,
			mockCall: func(repo *commentmocks.CommentRepository) {},
			wantErr:  true,
			errCode:  constant.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := commentmocks.NewCommentRepository(t)
			tt.mockCall(repo)

			ctx := utilsContext.WithIdentity(context.Background(), "u-1", tt.role)
			_, err := appcomment.NewCommentApp(repo, adminmocks.NewAdminRepository(t)).
				CreateComment(ctx, "u-1", &model.CommentRequest{Content: "nice", Post: "p-1"})
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCommentApp_UpdateComment(t *testing.T) {
	stored := model.Comment{ID: "c-1", Content: "old", AuthorID: "u-1", IsActive: true}

	tests := []struct {
		name     string
		callerID string
		req      *model.UpdateCommentRequest
		mockCall func(repo *commentmocks.CommentRepository, admins *adminmocks.AdminRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: author edits content",
			callerID: "u-1",
			req:      &model.UpdateCommentRequest{Content: "new", IsActive: boolPtr(true)},
			mockCall: func(repo *commentmocks.CommentRepository, admins *adminmocks.AdminRepository) {
				c := stored
				repo.On("GetByID", mock.Anything, "c-1").Return(&c, nil).Once()
				repo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool { return c.Content == "new" })).Return(nil).Once()
			},
		},
		{
			name:     "error: author cannot hide a comment",
			callerID: "u-1",
			req:      &model.UpdateCommentRequest{IsActive: boolPtr(false)},
			mockCall: func(repo *commentmocks.CommentRepository, admins *adminmocks.AdminRepository) {
				c := stored
				repo.On("GetByID", mock.Anything, "c-1").Return(&c, nil).Once()
				admins.On("Get", mock.Anything, &model.AdminFilter{ID: "u-1"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:     "success: admin hides a comment",
			callerID: "admin-1",
			req:      &model.UpdateCommentRequest{IsActive: boolPtr(false)},
			mockCall: func(repo *commentmocks.CommentRepository, admins *adminmocks.AdminRepository) {
				c := stored
				repo.On("GetByID", mock.Anything, "c-1").Return(&c, nil).Once()
				admins.On("Get", mock.Anything, &model.AdminFilter{ID: "admin-1"}).
					Return(&model.AdminEntity{ID: "admin-1", Type: constant.RoleAdmin}, nil).Once()
				repo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool { return !c.IsActive })).Return(nil).Once()
			},
		},
		{
			name:     "error: stranger",
			callerID: "u-2",
			req:      &model.UpdateCommentRequest{Content: "x"},
			mockCall: func(repo *commentmocks.CommentRepository, admins *adminmocks.AdminRepository) {
				c := stored
				repo.On("GetByID", mock.Anything, "c-1").Return(&c, nil).Once()
				admins.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:     "error: not found",
			callerID: "u-1",
			req:      &model.UpdateCommentRequest{},
			mockCall: func(repo *commentmocks.CommentRepository, admins *adminmocks.AdminRepository) {
				repo.On("GetByID", mock.Anything, "c-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := commentmocks.NewCommentRepository(t)
			admins := adminmocks.NewAdminRepository(t)
			tt.mockCall(repo, admins)

			_, err := appcomment.NewCommentApp(repo, admins).UpdateComment(context.Background(), tt.callerID, "c-1", tt.req)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCommentApp_DeleteComment(t *testing.T) {
	repo := commentmocks.NewCommentRepository(t)
	admins := adminmocks.NewAdminRepository(t)
	app := appcomment.NewCommentApp(repo, admins)

	repo.On("GetByID", mock.Anything, "c-1").Return(&model.Comment{ID: "c-1", AuthorID: "u-1"}, nil).Twice()
	admins.On("Get", mock.Anything, &model.AdminFilter{ID: "u-2"}).Return(nil, nil).Once()
	repo.On("Delete", mock.Anything, "c-1").Return(nil).Once()

	assert.True(t, cerr.Is(app.DeleteComment(context.Background(), "u-2", "c-1"), constant.ErrForbidden))
	assert.NoError(t, app.DeleteComment(context.Background(), "u-1", "c-1"))
}

func TestCommentApp_UserTokenSkipsAdminLookup(t *testing.T) {
	repo := commentmocks.NewCommentRepository(t)
	admins := adminmocks.NewAdminRepository(t)
	app := appcomment.NewCommentApp(repo, admins)
	ctx := utilsContext.WithIdentity(context.Background(), "u-2", constant.RoleUser)

	repo.On("GetByID", mock.Anything, "c-1").Return(&model.Comment{ID: "c-1", AuthorID: "u-1", IsActive: true}, nil).Twice()

	_, err := app.UpdateComment(ctx, "u-2", "c-1", &model.UpdateCommentRequest{Content: "x"})
	assert.True(t, cerr.Is(err, constant.ErrForbidden), "got %v", err)
	assert.True(t, cerr.Is(app.DeleteComment(ctx, "u-2", "c-1"), constant.ErrForbidden))
	admins.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCommentApp_AdminTokenStillChecksRecord(t *testing.T) {
	repo := commentmocks.NewCommentRepository(t)
	admins := adminmocks.NewAdminRepository(t)
	app := appcomment.NewCommentApp(repo, admins)
	ctx := utilsContext.WithIdentity(context.Background(), "admin-1", constant.RoleAdmin)

	repo.On("GetByID", mock.Anything, "c-1").Return(&model.Comment{ID: "c-1", AuthorID: "u-1"}, nil).Once()
	admins.On("Get", mock.Anything, &model.AdminFilter{ID: "admin-1"}).
		Return(&model.AdminEntity{ID: "admin-1", Type: constant.RoleAdmin}, nil).Once()
	repo.On("Delete", mock.Anything, "c-1").Return(nil).Once()

	assert.NoError(t, app.DeleteComment(ctx, "admin-1", "c-1"))
}
