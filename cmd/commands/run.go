package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"mediavault"
	"mediavault/config"
	"mediavault/internal/application/usecase"
	brokerRepository "mediavault/internal/domain/repository/broker"
	"mediavault/internal/infrastructure/broker"
	"mediavault/internal/infrastructure/database"
	"mediavault/internal/presentation/handler"
	"mediavault/internal/presentation/middleware"
	"mediavault/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running mediavault", "version", mediavault.StringVersion())

	pool := database.NewPool(cfg.DBConfig)

	db, err := pool.Get(context.Background())
	if err != nil {
		ExitOnError(err)
	}

	// The enrichment stream is optional: without BROKER_URI the API still
	// serves, it just stops announcing new records.
	var brokerClient *broker.Client
	var publisher brokerRepository.Publisher
	if cfg.BrokerConfig.URI != "" {
		brokerClient, err = broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	} else {
		logger.Warn("BROKER_URI is not set, media-created events disabled")
	}

	userWriter := database.NewUserWriter(db)
	userRetriever := database.NewUserRetriever(db)
	mediaWriter := database.NewMediaWriter(db)
	mediaLister := database.NewMediaLister(db)

	registrar := usecase.NewRegistrar(userRetriever, userWriter)
	authenticator := usecase.NewAuthenticator(userRetriever, cfg.Session)
	issuer := usecase.NewIssuer(cfg.UploadAuth)
	creator := usecase.NewMediaCreator(mediaWriter, publisher)
	lister := usecase.NewMediaLister(mediaLister)
	analyzer := usecase.NewAnalyzer()

	authHandler := handler.NewAuthHandler(registrar, authenticator)
	uploadAuthHandler := handler.NewUploadAuthHandler(issuer)
	mediaHandler := handler.NewMediaHandler(creator, lister)
	analyzeHandler := handler.NewAnalyzeHandler(analyzer)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("1M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	session := middleware.Session(cfg.Session.Secret)

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/media", mediaHandler.List)
	e.GET("/upload-authorization", uploadAuthHandler.Handle, session)
	e.POST("/media", mediaHandler.Create, session)
	e.POST("/media/analyze", analyzeHandler.Handle, session)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if brokerClient != nil {
		if err := brokerClient.Close(); err != nil {
			logger.Error("broker close failed", "err", err)
		}
	}
	if err := pool.Stop(); err != nil {
		logger.Error("database disconnect failed", "err", err)
	}
}
