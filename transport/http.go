package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	authapp "github.com/ShohjahonSohibov/Aberno/application/auth"
	brandapp "github.com/ShohjahonSohibov/Aberno/application/brand"
	categoryapp "github.com/ShohjahonSohibov/Aberno/application/category"
	clientapp "github.com/ShohjahonSohibov/Aberno/application/client"
	commentapp "github.com/ShohjahonSohibov/Aberno/application/comment"
	leadapp "github.com/ShohjahonSohibov/Aberno/application/lead"
	notificationapp "github.com/ShohjahonSohibov/Aberno/application/notification"
	postapp "github.com/ShohjahonSohibov/Aberno/application/post"
	postcategoryapp "github.com/ShohjahonSohibov/Aberno/application/postcategory"
	productapp "github.com/ShohjahonSohibov/Aberno/application/product"
	tagapp "github.com/ShohjahonSohibov/Aberno/application/tag"
	testimonialapp "github.com/ShohjahonSohibov/Aberno/application/testimonial"
	userapp "github.com/ShohjahonSohibov/Aberno/application/user"
	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
	utilsContext "github.com/ShohjahonSohibov/Aberno/utils/context"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
	validatorx "github.com/ShohjahonSohibov/Aberno/utils/validator"

	"go.uber.org/zap"
)

type RestHandler struct {
	AuthApp         authapp.AuthApp
	UserApp         userapp.UserApp
	BrandApp        brandapp.BrandApp
	CategoryApp     categoryapp.CategoryApp
	ProductApp      productapp.ProductApp
	PostApp         postapp.PostApp
	PostCategoryApp postcategoryapp.PostCategoryApp
	TagApp          tagapp.TagApp
	LeadApp         leadapp.LeadApp
	TestimonialApp  testimonialapp.TestimonialApp
	ClientApp       clientapp.ClientApp
	CommentApp      commentapp.CommentApp
	NotificationApp notificationapp.NotificationApp
}

type Options struct {
	InternalAPIKey string
	MetricsEnabled bool
	// TrustProxyHeaders takes the client address from X-Forwarded-For / X-Real-IP.
	TrustProxyHeaders bool
	// Health reports store reachability for /healthz; nil means always healthy.
	Health func(ctx context.Context) error
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	router := mux.NewRouter()

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.HandleFunc("/healthz", healthHandler(opts.Health)).Methods(http.MethodGet)
	if opts.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}

	authed := func(h http.HandlerFunc) http.Handler {
		return AuthMiddleware(rh.AuthApp)(h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return AuthMiddleware(rh.AuthApp)(AdminMiddleware(rh.AuthApp)(h))
	}

	api := router.PathPrefix("/api/v1").Subrouter()

	// auth
	api.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/login/admin", rh.LoginAdmin).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", rh.RefreshToken).Methods(http.MethodPost)

	// users and admins; /users/admin must be registered before /users/{id}
	api.Handle("/users/admin", admin(rh.CreateAdmin)).Methods(http.MethodPost)
	api.Handle("/users/admin/{id}", admin(rh.GetAdmin)).Methods(http.MethodGet)
	api.Handle("/users/admin/{id}", admin(rh.UpdateAdmin)).Methods(http.MethodPut)
	api.Handle("/users/admin/{id}", admin(rh.DeleteAdmin)).Methods(http.MethodDelete)
	api.Handle("/users/{id}", authed(rh.GetUser)).Methods(http.MethodGet)
	api.Handle("/users/{id}", authed(rh.UpdateUser)).Methods(http.MethodPut)
	api.Handle("/users/{id}", authed(rh.DeleteUser)).Methods(http.MethodDelete)

	api.Handle("/brands", admin(rh.CreateBrand)).Methods(http.MethodPost)
	api.HandleFunc("/brands", rh.ListBrands).Methods(http.MethodGet)
	api.HandleFunc("/brands/filter", rh.FilterBrands).Methods(http.MethodGet)
	api.HandleFunc("/brands/{id}", rh.GetBrand).Methods(http.MethodGet)
	api.Handle("/brands/{id}", admin(rh.UpdateBrand)).Methods(http.MethodPut)
	api.Handle("/brands/{id}", admin(rh.DeleteBrand)).Methods(http.MethodDelete)

	api.Handle("/categories", admin(rh.CreateCategory)).Methods(http.MethodPost)
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", rh.GetCategory).Methods(http.MethodGet)
	api.Handle("/categories/{id}", admin(rh.UpdateCategory)).Methods(http.MethodPut)
	api.Handle("/categories/{id}", admin(rh.DeleteCategory)).Methods(http.MethodDelete)

	api.Handle("/products", admin(rh.CreateProduct)).Methods(http.MethodPost)
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	api.Handle("/products/{id}", admin(rh.UpdateProduct)).Methods(http.MethodPut)
	api.Handle("/products/{id}", admin(rh.DeleteProduct)).Methods(http.MethodDelete)

	api.Handle("/posts", admin(rh.CreatePost)).Methods(http.MethodPost)
	api.HandleFunc("/posts", rh.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", rh.GetPost).Methods(http.MethodGet)
	api.Handle("/posts/{id}", admin(rh.UpdatePost)).Methods(http.MethodPut)
	api.Handle("/posts/{id}", admin(rh.DeletePost)).Methods(http.MethodDelete)

	api.Handle("/post-categories", admin(rh.CreatePostCategory)).Methods(http.MethodPost)
	api.HandleFunc("/post-categories", rh.ListPostCategories).Methods(http.MethodGet)
	api.HandleFunc("/post-categories/{id}", rh.GetPostCategory).Methods(http.MethodGet)
	api.Handle("/post-categories/{id}", admin(rh.UpdatePostCategory)).Methods(http.MethodPut)
	api.Handle("/post-categories/{id}", admin(rh.DeletePostCategory)).Methods(http.MethodDelete)

	api.Handle("/tags", admin(rh.CreateTag)).Methods(http.MethodPost)
	api.HandleFunc("/tags", rh.ListTags).Methods(http.MethodGet)
	api.HandleFunc("/tags/{id}", rh.GetTag).Methods(http.MethodGet)
	api.Handle("/tags/{id}", admin(rh.UpdateTag)).Methods(http.MethodPut)
	api.Handle("/tags/{id}", admin(rh.DeleteTag)).Methods(http.MethodDelete)

	api.HandleFunc("/leads", rh.CreateLead).Methods(http.MethodPost)
	api.Handle("/leads", admin(rh.ListLeads)).Methods(http.MethodGet)
	api.Handle("/leads/status/{id}", admin(rh.UpdateLeadStatus)).Methods(http.MethodPut)
	api.Handle("/leads/{id}", admin(rh.GetLead)).Methods(http.MethodGet)
	api.Handle("/leads/{id}", admin(rh.UpdateLead)).Methods(http.MethodPut)
	api.Handle("/leads/{id}", admin(rh.DeleteLead)).Methods(http.MethodDelete)

	api.Handle("/testimonials", admin(rh.CreateTestimonial)).Methods(http.MethodPost)
	api.HandleFunc("/testimonials", rh.ListTestimonials).Methods(http.MethodGet)
	api.HandleFunc("/testimonials/{id}", rh.GetTestimonial).Methods(http.MethodGet)
	api.Handle("/testimonials/{id}", admin(rh.UpdateTestimonial)).Methods(http.MethodPut)
	api.Handle("/testimonials/{id}", admin(rh.DeleteTestimonial)).Methods(http.MethodDelete)

	api.Handle("/clients", admin(rh.CreateClient)).Methods(http.MethodPost)
	api.HandleFunc("/clients", rh.ListClients).Methods(http.MethodGet)
	api.Handle("/clients/{id}", admin(rh.GetClient)).Methods(http.MethodGet)
	api.Handle("/clients/{id}", admin(rh.UpdateClient)).Methods(http.MethodPut)
	api.Handle("/clients/{id}", admin(rh.DeleteClient)).Methods(http.MethodDelete)

	api.Handle("/comments", authed(rh.CreateComment)).Methods(http.MethodPost)
	api.HandleFunc("/comments", rh.ListComments).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}", rh.GetComment).Methods(http.MethodGet)
	api.Handle("/comments/{id}", authed(rh.UpdateComment)).Methods(http.MethodPut)
	api.Handle("/comments/{id}", authed(rh.DeleteComment)).Methods(http.MethodDelete)

	api.Handle("/notifications", admin(rh.CreateNotification)).Methods(http.MethodPost)
	api.Handle("/notifications", admin(rh.ListNotifications)).Methods(http.MethodGet)
	api.Handle("/notifications/{id}", admin(rh.GetNotification)).Methods(http.MethodGet)
	api.Handle("/notifications/{id}", admin(rh.UpdateNotification)).Methods(http.MethodPut)
	api.Handle("/notifications/{id}", admin(rh.DeleteNotification)).Methods(http.MethodDelete)

	// service-to-service
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/notifications", rh.CreateSystemNotification).Methods(http.MethodPost)

	// middleware
	router.Use(ClientIPMiddleware(opts.TrustProxyHeaders))
	router.Use(LoggingMiddleware())
	if opts.MetricsEnabled {
		router.Use(MetricsMiddleware())
	}

	return router
}

func healthHandler(health func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := health(ctx); err != nil {
				logger.Warn("[healthz] store unreachable", zap.String("error", err.Error()))
				http.Error(w, "unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

// bind decodes the JSON body into dst and validates it.
func bind(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

func callerID(r *http.Request) string {
	id, _ := utilsContext.GetUserID(r.Context())
	return id
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func writeCreated[T any](w http.ResponseWriter, what string, data T) {
	writeJSON(w, http.StatusCreated, model.CreatedResponse[T]{
		Message: what + " created successfully",
		Data:    data,
	})
}

func writeDeleted(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: what + " deleted successfully"})
}

func writeError(w http.ResponseWriter, err error) {
	ce := errors.From(err)
	writeJSON(w, ce.ErrorHTTPCode(), model.ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("[writeJSON] err Encode", zap.String("error", err.Error()))
	}
}
