package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ShohjahonSohibov/Aberno/constant"
	mockAuth "github.com/ShohjahonSohibov/Aberno/mocks/application/auth"
	mockBrand "github.com/ShohjahonSohibov/Aberno/mocks/application/brand"
	mockComment "github.com/ShohjahonSohibov/Aberno/mocks/application/comment"
	mockLead "github.com/ShohjahonSohibov/Aberno/mocks/application/lead"
	mockNotification "github.com/ShohjahonSohibov/Aberno/mocks/application/notification"
	mockUser "github.com/ShohjahonSohibov/Aberno/mocks/application/user"
	"github.com/ShohjahonSohibov/Aberno/model"
	utilsContext "github.com/ShohjahonSohibov/Aberno/utils/context"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
)

const internalKey = "svc-key"

type TransportTestSuite struct {
	authApp         *mockAuth.AuthApp
	userApp         *mockUser.UserApp
	brandApp        *mockBrand.BrandApp
	leadApp         *mockLead.LeadApp
	commentApp      *mockComment.CommentApp
	notificationApp *mockNotification.NotificationApp
	handler         http.Handler
}

func setupTransport(t *testing.T, health func(context.Context) error) *TransportTestSuite {
	s := &TransportTestSuite{
		authApp:         mockAuth.NewAuthApp(t),
		userApp:         mockUser.NewUserApp(t),
		brandApp:        mockBrand.NewBrandApp(t),
		leadApp:         mockLead.NewLeadApp(t),
		commentApp:      mockComment.NewCommentApp(t),
		notificationApp: mockNotification.NewNotificationApp(t),
	}
	s.handler = NewTransport(&RestHandler{
		AuthApp:         s.authApp,
		UserApp:         s.userApp,
		BrandApp:        s.brandApp,
		LeadApp:         s.leadApp,
		CommentApp:      s.commentApp,
		NotificationApp: s.notificationApp,
	}, Options{InternalAPIKey: internalKey, MetricsEnabled: true, Health: health})
	return s
}

func (s *TransportTestSuite) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	var res model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mock       func(s *TransportTestSuite)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "registered",
			body: `{"email":"a@x.com","password":"ab"}`,
			mock: func(s *TransportTestSuite) {
				s.authApp.On("RegisterUser", mock.Anything, &model.RegisterRequest{Email: "a@x.com", Password: "ab"}).
					Return(&model.TokenResponse{Token: "tok"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "second registration with the same email",
			body: `{"email":"a@x.com","password":"ab"}`,
			mock: func(s *TransportTestSuite) {
				s.authApp.On("RegisterUser", mock.Anything, mock.Anything).
					Return(nil, errors.SetCustomError(constant.ErrUserExists))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "User already exists",
		},
		{
			name:       "neither email nor phone",
			body:       `{"password":"secret"}`,
			mock:       func(s *TransportTestSuite) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request",
		},
		{
			name:       "password longer than bcrypt accepts",
			body:       `{"email":"a@x.com","password":"` + strings.Repeat("a", 73) + `"}`,
			mock:       func(s *TransportTestSuite) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request",
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			mock:       func(s *TransportTestSuite) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTransport(t, nil)
			tt.mock(s)

			rec := s.do(http.MethodPost, "/api/v1/auth/register", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var res model.TokenResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Equal(t, "tok", res.Token)
				return
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeError(t, rec).Message)
			}
		})
	}
}

func TestListBrands_Pagination(t *testing.T) {
	s := setupTransport(t, nil)

	s.brandApp.On("ListBrands", mock.Anything, mock.MatchedBy(func(f model.ListFilter) bool {
		return f.Page == 2 && f.Limit == 5 && f.IsActive != nil && *f.IsActive
	})).Return(func(_ context.Context, f model.ListFilter) (*model.Page[model.Brand], error) {
		f.Normalize()
		items := make([]model.Brand, 5)
		for i := range items {
			items[i] = model.Brand{ID: fmt.Sprintf("b-%d", i+6)}
		}
		return model.NewPage(items, 12, f), nil
	})

	rec := s.do(http.MethodGet, "/api/v1/brands?page=2&limit=5&isActive=true", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var page model.Page[model.Brand]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page.Items, 5)
	assert.Equal(t, int64(12), page.Count)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, "b-6", page.Items[0].ID)
}

func TestListBrands_BadQuery(t *testing.T) {
	s := setupTransport(t, nil)

	for _, q := range []string{"isActive=yes", "page=0", "limit=abc", "sortByCreatedAt=up"} {
		rec := s.do(http.MethodGet, "/api/v1/brands?"+q, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestBrandsFilterRoute(t *testing.T) {
	s := setupTransport(t, nil)
	s.brandApp.On("ListBrandsWithCategories", mock.Anything, mock.Anything).
		Return(&model.Page[model.BrandWithCategories]{Items: []model.BrandWithCategories{}}, nil)

	rec := s.do(http.MethodGet, "/api/v1/brands/filter", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	s.brandApp.AssertNotCalled(t, "GetBrand", mock.Anything, mock.Anything)
}

func TestDeleteBrand_AdminGate(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		mock       func(s *TransportTestSuite)
		wantStatus int
	}{
		{
			name:       "missing token",
			mock:       func(s *TransportTestSuite) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "invalid token",
			headers: bearer("junk"),
			mock: func(s *TransportTestSuite) {
				s.authApp.On("Authenticate", mock.Anything, "junk").
					Return("", constant.Role(""), errors.SetCustomError(constant.ErrUnauthorize))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "user token",
			headers: bearer("user-tok"),
			mock: func(s *TransportTestSuite) {
				s.authApp.On("Authenticate", mock.Anything, "user-tok").Return("u-1", constant.RoleUser, nil)
				s.authApp.On("RequireAdmin", mock.Anything, "u-1").Return(errors.SetCustomError(constant.ErrForbidden))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:    "admin record gone",
			headers: bearer("admin-tok"),
			mock: func(s *TransportTestSuite) {
				s.authApp.On("Authenticate", mock.Anything, "admin-tok").Return("a-1", constant.RoleAdmin, nil)
				s.authApp.On("RequireAdmin", mock.Anything, "a-1").Return(errors.SetCustomError(constant.ErrAdminNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "admin",
			headers: bearer("admin-tok"),
			mock: func(s *TransportTestSuite) {
				s.authApp.On("Authenticate", mock.Anything, "admin-tok").Return("a-1", constant.RoleAdmin, nil)
				s.authApp.On("RequireAdmin", mock.Anything, "a-1").Return(nil)
				s.brandApp.On("DeleteBrand", mock.Anything, "b-1").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTransport(t, nil)
			tt.mock(s)

			rec := s.do(http.MethodDelete, "/api/v1/brands/b-1", "", tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				s.brandApp.AssertNotCalled(t, "DeleteBrand", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCreateAdmin_RouteNotShadowedByUserID(t *testing.T) {
	s := setupTransport(t, nil)
	s.authApp.On("Authenticate", mock.Anything, "admin-tok").Return("a-1", constant.RoleAdmin, nil)
	s.authApp.On("RequireAdmin", mock.Anything, "a-1").Return(nil)
	s.userApp.On("CreateAdmin", mock.Anything, mock.MatchedBy(func(r *model.CreateAdminRequest) bool {
		return r.Username == "root"
	})).Return(&model.AdminEntity{ID: "a-2", Username: "root"}, nil)

	body := `{"username":"root","fullname":"Root","phone":"+998","password":"pw"}`
	rec := s.do(http.MethodPost, "/api/v1/users/admin", body, bearer("admin-tok"))

	require.Equal(t, http.StatusCreated, rec.Code)
	var res model.CreatedResponse[model.AdminEntity]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Admin created successfully", res.Message)
	assert.Equal(t, "a-2", res.Data.ID)
}

func TestUpdateUser_PassesCaller(t *testing.T) {
	s := setupTransport(t, nil)
	s.authApp.On("Authenticate", mock.Anything, "user-tok").Return("u-1", constant.RoleUser, nil)
	s.userApp.On("UpdateUser", mock.Anything, "u-1", "u-2", mock.Anything).
		Return(nil, errors.SetCustomError(constant.ErrForbidden))

	rec := s.do(http.MethodPut, "/api/v1/users/u-2", `{"fullname":"X"}`, bearer("user-tok"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied", decodeError(t, rec).Message)
}

func TestCreateComment_AuthorFromToken(t *testing.T) {
	s := setupTransport(t, nil)
	s.authApp.On("Authenticate", mock.Anything, "user-tok").Return("u-1", constant.RoleUser, nil)
	s.commentApp.On("CreateComment", mock.Anything, "u-1", mock.MatchedBy(func(r *model.CommentRequest) bool {
		return r.Content == "nice" && r.Post == "p-1"
	})).Return(&model.Comment{ID: "c-1", Content: "nice"}, nil)

	rec := s.do(http.MethodPost, "/api/v1/comments", `{"content":"nice","post":"p-1"}`, bearer("user-tok"))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLeads(t *testing.T) {
	t.Run("public create", func(t *testing.T) {
		s := setupTransport(t, nil)
		s.leadApp.On("CreateLead", mock.Anything, mock.Anything).
			Return(&model.Lead{ID: "l-1", Name: "Ali", Status: constant.LeadStatusNew}, nil)

		rec := s.do(http.MethodPost, "/api/v1/leads", `{"name":"Ali","phone":"+998"}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("status update rejects unknown status", func(t *testing.T) {
		s := setupTransport(t, nil)
		s.authApp.On("Authenticate", mock.Anything, "admin-tok").Return("a-1", constant.RoleAdmin, nil)
		s.authApp.On("RequireAdmin", mock.Anything, "a-1").Return(nil)

		rec := s.do(http.MethodPut, "/api/v1/leads/status/l-1", `{"status":"archived"}`, bearer("admin-tok"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		s.leadApp.AssertNotCalled(t, "UpdateLeadStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	for _, tc := range []struct{ name, target, body string }{
		{"status from body", "/api/v1/leads/status/l-1", `{"status":"called"}`},
		{"status from query", "/api/v1/leads/status/l-1?status=called", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := setupTransport(t, nil)
			s.authApp.On("Authenticate", mock.Anything, "admin-tok").Return("a-1", constant.RoleAdmin, nil)
			s.authApp.On("RequireAdmin", mock.Anything, "a-1").Return(nil)
			s.leadApp.On("UpdateLeadStatus", mock.Anything, "l-1", "called").
				Return(&model.Lead{ID: "l-1", Status: constant.LeadStatusCalled}, nil)

			rec := s.do(http.MethodPut, tc.target, tc.body, bearer("admin-tok"))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("query status validated", func(t *testing.T) {
		s := setupTransport(t, nil)
		s.authApp.On("Authenticate", mock.Anything, "admin-tok").Return("a-1", constant.RoleAdmin, nil)
		s.authApp.On("RequireAdmin", mock.Anything, "a-1").Return(nil)

		rec := s.do(http.MethodPut, "/api/v1/leads/status/l-1?status=lost", "", bearer("admin-tok"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInternalNotifications(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		mock       func(s *TransportTestSuite)
		wantStatus int
	}{
		{
			name:       "no key",
			mock:       func(s *TransportTestSuite) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong key",
			headers:    bearer("nope"),
			mock:       func(s *TransportTestSuite) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:    "service key",
			headers: bearer(internalKey),
			mock: func(s *TransportTestSuite) {
				s.notificationApp.On("CreateNotification", mock.Anything, "", &model.NotificationRequest{Message: "New lead: Ali (+998)"}).
					Return(&model.Notification{ID: "n-1", Message: "New lead: Ali (+998)"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTransport(t, nil)
			tt.mock(s)

			rec := s.do(http.MethodPost, "/internal/v1/notifications", `{"message":"New lead: Ali (+998)"}`, tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestInternalMiddleware_EmptyKeyRejectsAll(t *testing.T) {
	h := InternalMiddleware("")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/internal/v1/notifications", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthzAndMetrics(t *testing.T) {
	healthy := setupTransport(t, func(context.Context) error { return nil })
	assert.Equal(t, http.StatusOK, healthy.do(http.MethodGet, "/healthz", "", nil).Code)

	down := setupTransport(t, func(context.Context) error { return fmt.Errorf("db down") })
	assert.Equal(t, http.StatusServiceUnavailable, down.do(http.MethodGet, "/healthz", "", nil).Code)

	rec := healthy.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "aberno_http_requests_total")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		headers    map[string]string
		want       string
	}{
		{name: "remote address", want: "192.0.2.1"},
		{
			name:    "forwarded headers ignored by default",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.9", "X-Real-IP": "203.0.113.10"},
			want:    "192.0.2.1",
		},
		{
			name:       "last forwarded hop when trusted",
			trustProxy: true,
			headers:    map[string]string{"X-Forwarded-For": "10.9.9.9, 203.0.113.9"},
			want:       "203.0.113.9",
		},
		{
			name:       "real ip when trusted",
			trustProxy: true,
			headers:    map[string]string{"X-Real-IP": "203.0.113.10"},
			want:       "203.0.113.10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req, tt.trustProxy))
		})
	}
}

func TestLogin_CarriesClientIP(t *testing.T) {
	s := setupTransport(t, nil)
	s.authApp.On("LoginUser", mock.MatchedBy(func(ctx context.Context) bool {
		return utilsContext.GetClientIP(ctx) == "192.0.2.1"
	}), mock.Anything).Return(&model.TokenResponse{Token: "tok"}, nil)

	rec := s.do(http.MethodPost, "/api/v1/auth/login", `{"email":"a@x.com","password":"secret"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
