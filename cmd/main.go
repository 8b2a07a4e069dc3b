package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

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
	"github.com/ShohjahonSohibov/Aberno/application/token"
	userapp "github.com/ShohjahonSohibov/Aberno/application/user"
	"github.com/ShohjahonSohibov/Aberno/cmd/config"
	redisclient "github.com/ShohjahonSohibov/Aberno/cmd/redis"
	_ "github.com/ShohjahonSohibov/Aberno/docs"
	"github.com/ShohjahonSohibov/Aberno/migrations"
	adminRepo "github.com/ShohjahonSohibov/Aberno/repository/admin"
	brandRepo "github.com/ShohjahonSohibov/Aberno/repository/brand"
	categoryRepo "github.com/ShohjahonSohibov/Aberno/repository/category"
	clientRepo "github.com/ShohjahonSohibov/Aberno/repository/client"
	commentRepo "github.com/ShohjahonSohibov/Aberno/repository/comment"
	leadRepo "github.com/ShohjahonSohibov/Aberno/repository/lead"
	notificationRepo "github.com/ShohjahonSohibov/Aberno/repository/notification"
	postRepo "github.com/ShohjahonSohibov/Aberno/repository/post"
	postcategoryRepo "github.com/ShohjahonSohibov/Aberno/repository/postcategory"
	productRepo "github.com/ShohjahonSohibov/Aberno/repository/product"
	redisRepo "github.com/ShohjahonSohibov/Aberno/repository/redis"
	tagRepo "github.com/ShohjahonSohibov/Aberno/repository/tag"
	testimonialRepo "github.com/ShohjahonSohibov/Aberno/repository/testimonial"
	userRepo "github.com/ShohjahonSohibov/Aberno/repository/user"
	"github.com/ShohjahonSohibov/Aberno/thirdparty/rabbitmq"
	"github.com/ShohjahonSohibov/Aberno/transport"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
	"github.com/ShohjahonSohibov/Aberno/utils/password"
	validatorx "github.com/ShohjahonSohibov/Aberno/utils/validator"
)

// @title Aberno API
// @version 1.0
// @description Content and catalog administration API
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()
	validatorx.Init()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(ctx, db.DB); err != nil {
			logger.Fatal("err migrate db", zap.Error(err))
		}
	}

	// login throttling degrades to no-op calls when redis is down
	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Warn("redis unavailable, login throttling is best effort", zap.Error(err))
		redisClient = redisclient.NewUnchecked(cfg)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	// leads are stored even when the broker is down
	var publisher leadapp.Publisher
	if p, err := rabbitmq.NewPublisher(cfg.RabbitMQ); err != nil {
		logger.Warn("rabbitmq unavailable, lead events disabled", zap.Error(err))
	} else {
		publisher = p
		defer p.Close()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	AdminRepo := adminRepo.NewAdminRepository(db)
	BrandRepo := brandRepo.NewBrandRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	PostRepo := postRepo.NewPostRepository(db)
	PostCategoryRepo := postcategoryRepo.NewPostCategoryRepository(db)
	TagRepo := tagRepo.NewTagRepository(db)
	LeadRepo := leadRepo.NewLeadRepository(db)
	TestimonialRepo := testimonialRepo.NewTestimonialRepository(db)
	ClientRepo := clientRepo.NewClientRepository(db)
	CommentRepo := commentRepo.NewCommentRepository(db)
	NotificationRepo := notificationRepo.NewNotificationRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// Initialize application layers
	hasher := password.NewHasher()
	UserApp := userapp.NewUserApp(UserRepo, AdminRepo, hasher)

	if err := UserApp.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Fatal("err bootstrap admin", zap.Error(err))
	}

	handler := &transport.RestHandler{
		AuthApp:         authapp.NewAuthApp(cfg, UserRepo, AdminRepo, RedisRepo, token.NewService(cfg.Auth), hasher),
		UserApp:         UserApp,
		BrandApp:        brandapp.NewBrandApp(BrandRepo),
		CategoryApp:     categoryapp.NewCategoryApp(CategoryRepo),
		ProductApp:      productapp.NewProductApp(ProductRepo),
		PostApp:         postapp.NewPostApp(PostRepo, CommentRepo),
		PostCategoryApp: postcategoryapp.NewPostCategoryApp(PostCategoryRepo),
		TagApp:          tagapp.NewTagApp(TagRepo),
		LeadApp:         leadapp.NewLeadApp(LeadRepo, publisher),
		TestimonialApp:  testimonialapp.NewTestimonialApp(TestimonialRepo),
		ClientApp:       clientapp.NewClientApp(ClientRepo),
		CommentApp:      commentapp.NewCommentApp(CommentRepo, AdminRepo),
		NotificationApp: notificationapp.NewNotificationApp(NotificationRepo),
	}

	httpTransport := transport.NewTransport(handler, transport.Options{
		InternalAPIKey:    cfg.Internal.APIKey,
		MetricsEnabled:    cfg.Metrics.Enabled,
		TrustProxyHeaders: cfg.Server.TrustProxyHeaders,
		Health:            db.PingContext,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
