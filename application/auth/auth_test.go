package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appauth "github.com/ShohjahonSohibov/Aberno/application/auth"
	"github.com/ShohjahonSohibov/Aberno/application/token"
	"github.com/ShohjahonSohibov/Aberno/cmd/config"
	"github.com/ShohjahonSohibov/Aberno/constant"
	adminmocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/admin"
	redismocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/redis"
	usermocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/user"
	"github.com/ShohjahonSohibov/Aberno/model"
	utilsContext "github.com/ShohjahonSohibov/Aberno/utils/context"
	cerr "github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/password"
)

var (
	hasher  = password.NewHasher()
	pwdHash = mustHash("secret")
)

func mustHash(p string) string {
	h, err := hasher.Hash(p)
	if err != nil {
		panic(err)
	}
	return h
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret",
			UserAccessTTL:    365 * 24 * time.Hour,
			AdminAccessTTL:   30 * 24 * time.Hour,
			RefreshTTL:       60 * 24 * time.Hour,
			LoginMaxAttempts: 10,
			LoginLockout:     15 * time.Minute,
		},
	}
}

type fields struct {
	userRepo  *usermocks.UserRepository
	adminRepo *adminmocks.AdminRepository
	redisRepo *redismocks.RedisRepository
}

func newFields(t *testing.T) fields {
	return fields{
		userRepo:  usermocks.NewUserRepository(t),
		adminRepo: adminmocks.NewAdminRepository(t),
		redisRepo: redismocks.NewRedisRepository(t),
	}
}

func newApp(cfg *config.Config, f fields) (appauth.AuthApp, token.Service) {
	tokens := token.NewService(cfg.Auth)
	return appauth.NewAuthApp(cfg, f.userRepo, f.adminRepo, f.redisRepo, tokens, hasher), tokens
}

func TestAuthApp_RegisterUser(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.RegisterRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register with email",
			req:  &model.RegisterRequest{Email: "a@x.com", Password: "ab"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Email == "a@x.com" && ent.PasswordHash != "ab" && hasher.Verify("ab", ent.PasswordHash)
					})).
					Return(&model.UserEntity{ID: "u-1", Email: "a@x.com"}, nil).
					Once()
			},
		},
		{
			name: "success: register with email and phone",
			req:  &model.RegisterRequest{Email: "b@x.com", Phone: "998901234567", Password: "ab"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "b@x.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "998901234567"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.Anything).Return(&model.UserEntity{ID: "u-1"}, nil).Once()
			},
		},
		{
			name: "error: email already exists",
			req:  &model.RegisterRequest{Email: "a@x.com", Password: "ab"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(&model.UserEntity{ID: "u-0", Email: "a@x.com"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUserExists,
		},
		{
			name: "error: phone already exists",
			req:  &model.RegisterRequest{Phone: "998901234567", Password: "ab"},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "998901234567"}).
					Return(&model.UserEntity{ID: "u-0"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUserExists,
		},
		{
			name: "error: password over bcrypt limit is invalid request",
			req:  &model.RegisterRequest{Email: "a@x.com", Password: strings.Repeat("a", 73)},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: store failure is internal",
			req:  &model.RegisterRequest{Email: "a@x.com", Password: "ab"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: create fails",
			req:  &model.RegisterRequest{Email: "a@x.com", Password: "ab"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("duplicate")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			app, tokens := newApp(testConfig(), f)

			got, err := app.RegisterUser(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			claims, err := tokens.Verify(got.Token)
			require.NoError(t, err)
			assert.Equal(t, "u-1", claims.Subject)
			assert.Equal(t, constant.RoleUser, claims.Role)
			assert.Empty(t, got.RefreshToken)
		})
	}
}

func TestAuthApp_LoginUser(t *testing.T) {
	user := &model.UserEntity{ID: "u-1", Email: "a@x.com", PasswordHash: pwdHash}

	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: email login clears failures",
			req:  &model.LoginRequest{Email: "a@x.com", Password: "secret"},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, "login_attempts:user:a@x.com").Return("2", nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).Return(user, nil).Once()
				f.redisRepo.On("Delete", mock.Anything, "login_attempts:user:a@x.com").Return(nil).Once()
			},
		},
		{
			name: "success: phone login with redis down",
			req:  &model.LoginRequest{Phone: "998901234567", Password: "secret"},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, "login_attempts:user:998901234567").Return("", errors.New("conn refused")).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "998901234567"}).Return(user, nil).Once()
				f.redisRepo.On("Delete", mock.Anything, mock.Anything).Return(errors.New("conn refused")).Once()
			},
		},
		{
			name: "error: wrong password counts a failure",
			req:  &model.LoginRequest{Email: "a@x.com", Password: "nope"},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, mock.Anything).Return("", nil).Once()
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(user, nil).Once()
				f.redisRepo.On("Incr", mock.Anything, "login_attempts:user:a@x.com", 15*time.Minute).Return(int64(1), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: unknown user",
			req:  &model.LoginRequest{Email: "ghost@x.com", Password: "secret"},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, mock.Anything).Return("", nil).Once()
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.redisRepo.On("Incr", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: locked out before lookup",
			req:  &model.LoginRequest{Email: "a@x.com", Password: "secret"},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, mock.Anything).Return("10", nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTooManyAttempts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			app, tokens := newApp(testConfig(), f)

			got, err := app.LoginUser(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			claims, err := tokens.Verify(got.Token)
			require.NoError(t, err)
			assert.Equal(t, "u-1", claims.Subject)
		})
	}
}

func TestAuthApp_LoginUser_LockoutPerClient(t *testing.T) {
	f := newFields(t)
	app, _ := newApp(testConfig(), f)
	user := &model.UserEntity{ID: "u-1", Email: "a@x.com", PasswordHash: pwdHash}
	req := &model.LoginRequest{Email: "a@x.com", Password: "secret"}

	f.redisRepo.On("Get", mock.Anything, "login_attempts:user:a@x.com:203.0.113.9").Return("10", nil).Once()
	f.redisRepo.On("Get", mock.Anything, "login_attempts:user:a@x.com:198.51.100.4").Return("", nil).Once()
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@x.com"}).Return(user, nil).Once()
	f.redisRepo.On("Delete", mock.Anything, "login_attempts:user:a@x.com:198.51.100.4").Return(nil).Once()

	_, err := app.LoginUser(utilsContext.WithClientIP(context.Background(), "203.0.113.9"), req)
	assert.True(t, cerr.Is(err, constant.ErrTooManyAttempts), "got %v", err)

	got, err := app.LoginUser(utilsContext.WithClientIP(context.Background(), "198.51.100.4"), req)
	require.NoError(t, err)
	assert.NotEmpty(t, got.Token)
}

func TestAuthApp_LoginAdmin_FailureCountedPerClient(t *testing.T) {
	f := newFields(t)
	app, _ := newApp(testConfig(), f)
	ctx := utilsContext.WithClientIP(context.Background(), "203.0.113.9")

	f.redisRepo.On("Get", mock.Anything, "login_attempts:admin:root:203.0.113.9").Return("", nil).Once()
	f.adminRepo.On("Get", mock.Anything, &model.AdminFilter{Username: "root"}).Return(nil, nil).Once()
	f.redisRepo.On("Incr", mock.Anything, "login_attempts:admin:root:203.0.113.9", 15*time.Minute).Return(int64(1), nil).Once()

	_, err := app.LoginAdmin(ctx, &model.AdminLoginRequest{Username: "root", Password: "nope"})
	assert.True(t, cerr.Is(err, constant.ErrInvalidCredentials), "got %v", err)
}

func TestAuthApp_AdminRefreshRotation(t *testing.T) {
	f := newFields(t)
	app, tokens := newApp(testConfig(), f)

	var stored string
	lookup := func(_ context.Context, _ *model.AdminFilter) (*model.AdminEntity, error) {
		return &model.AdminEntity{ID: "admin-1", Username: "root", PasswordHash: pwdHash, RefreshToken: stored, Type: constant.RoleAdmin}, nil
	}

	f.redisRepo.On("Get", mock.Anything, "login_attempts:admin:root").Return("", nil)
	f.redisRepo.On("Delete", mock.Anything, "login_attempts:admin:root").Return(nil)
	f.adminRepo.On("Get", mock.Anything, &model.AdminFilter{Username: "root"}).Return(lookup)
	f.adminRepo.On("Get", mock.Anything, &model.AdminFilter{ID: "admin-1"}).Return(lookup)
	f.adminRepo.
		On("UpdateRefreshToken", mock.Anything, "admin-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { stored = args.String(2) }).
		Return(nil)

	ctx := context.Background()
	login := &model.AdminLoginRequest{Username: "root", Password: "secret"}

	first, err := app.LoginAdmin(ctx, login)
	require.NoError(t, err)
	second, err := app.LoginAdmin(ctx, login)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	claims, err := tokens.Verify(second.Token)
	require.NoError(t, err)
	assert.Equal(t, constant.RoleAdmin, claims.Role)
	assert.Equal(t, 30*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

	_, err = app.RefreshToken(ctx, &model.RefreshTokenRequest{RefreshToken: first.RefreshToken})
	require.Error(t, err)
	assert.True(t, cerr.Is(err, constant.ErrInvalidRefreshToken))
	assert.Equal(t, 403, cerr.From(err).ErrorHTTPCode())

	refreshed, err := app.RefreshToken(ctx, &model.RefreshTokenRequest{RefreshToken: second.RefreshToken})
	require.NoError(t, err)
	claims, err = tokens.Verify(refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, constant.RoleAdmin, claims.Role)
}

func TestAuthApp_LoginAdmin_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		errCode  constant.ErrorType
	}{
		{
			name: "unknown username",
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, mock.Anything).Return("", nil).Once()
				f.adminRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.redisRepo.On("Incr", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil).Once()
			},
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "refresh token not persisted",
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, mock.Anything).Return("", nil).Once()
				f.adminRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.AdminEntity{ID: "admin-1", PasswordHash: pwdHash, Type: constant.RoleAdmin}, nil).Once()
				f.redisRepo.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()
				f.adminRepo.On("UpdateRefreshToken", mock.Anything, "admin-1", mock.Anything, mock.Anything).
					Return(errors.New("db down")).Once()
			},
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			app, _ := newApp(testConfig(), f)

			got, err := app.LoginAdmin(context.Background(), &model.AdminLoginRequest{Username: "root", Password: "secret"})
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
		})
	}
}

func TestAuthApp_RefreshToken_Rejects(t *testing.T) {
	f := newFields(t)
	app, tokens := newApp(testConfig(), f)

	access, err := tokens.IssueAccess("admin-1", constant.RoleAdmin)
	require.NoError(t, err)
	orphan, err := tokens.IssueRefresh("deleted-admin")
	require.NoError(t, err)

	f.adminRepo.On("Get", mock.Anything, &model.AdminFilter{ID: "deleted-admin"}).Return(nil, nil).Once()

	for _, tok := range []string{"garbage", access, orphan} {
		_, err := app.RefreshToken(context.Background(), &model.RefreshTokenRequest{RefreshToken: tok})
		assert.True(t, cerr.Is(err, constant.ErrInvalidRefreshToken), "got %v", err)
	}
}

func TestAuthApp_Authenticate(t *testing.T) {
	f := newFields(t)
	app, tokens := newApp(testConfig(), f)

	tok, err := tokens.IssueAccess("u-1", constant.RoleUser)
	require.NoError(t, err)

	subject, role, err := app.Authenticate(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", subject)
	assert.Equal(t, constant.RoleUser, role)

	_, _, err = app.Authenticate(context.Background(), tok+"x")
	assert.True(t, cerr.Is(err, constant.ErrUnauthorize))
}

func TestAuthApp_RequireAdmin(t *testing.T) {
	tests := []struct {
		name      string
		subjectID string
		mockCall  func(f fields)
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:      "admin passes",
			subjectID: "admin-1",
			mockCall: func(f fields) {
				f.adminRepo.On("Get", mock.Anything, &model.AdminFilter{ID: "admin-1"}).
					Return(&model.AdminEntity{ID: "admin-1", Type: constant.RoleAdmin}, nil).Once()
			},
		},
		{
			name:      "user identity is not found among admins",
			subjectID: "u-1",
			mockCall: func(f fields) {
				f.adminRepo.On("Get", mock.Anything, &model.AdminFilter{ID: "u-1"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAdminNotFound,
		},
		{
			name:      "credential without admin role is forbidden",
			subjectID: "admin-2",
			mockCall: func(f fields) {
				f.adminRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.AdminEntity{ID: "admin-2", Type: constant.RoleUser}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:      "store failure",
			subjectID: "admin-1",
			mockCall: func(f fields) {
				f.adminRepo.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:     "missing identity",
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrUnauthorize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			app, _ := newApp(testConfig(), f)

			err := app.RequireAdmin(context.Background(), tt.subjectID)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
		})
	}
}
