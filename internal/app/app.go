package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"

	"github.com/coachdesk/coachdesk/config"
	"github.com/coachdesk/coachdesk/internal/database"
	"github.com/coachdesk/coachdesk/internal/domain"
	httpHandler "github.com/coachdesk/coachdesk/internal/http"
	"github.com/coachdesk/coachdesk/internal/http/middleware"
	"github.com/coachdesk/coachdesk/internal/repository"
	"github.com/coachdesk/coachdesk/internal/service"
	"github.com/coachdesk/coachdesk/pkg/logger"
	"github.com/coachdesk/coachdesk/pkg/mailer"
	"github.com/coachdesk/coachdesk/pkg/tracing"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetMailer() mailer.Mailer
	Handler() http.Handler

	// Server status methods
	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	// Methods for initialization steps
	InitTracing() error
	InitDB() error
	InitMailer() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mailer mailer.Mailer

	// mailerSet is true once a mailer was chosen, even when that choice
	// is "no mailer"
	mailerSet bool

	// Repositories
	clientRepo       domain.ClientRepository
	coachRepo        domain.CoachRepository
	formProgressRepo domain.FormProgressRepository
	rosterRepo       domain.RosterRepository
	mappingRepo      domain.MappingRepository

	// Services
	clientService     domain.ClientService
	coachService      domain.CoachService
	assignmentService domain.AssignmentService
	rosterService     domain.RosterService
	mappingService    domain.MappingService

	// HTTP
	mux      *http.ServeMux
	server   *http.Server
	serverMu sync.RWMutex

	serverStarted chan struct{}

	// Graceful shutdown
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64
	requestWg       sync.WaitGroup
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
		a.mailerSet = true
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing
func (a *App) InitTracing() error {
	tracingConfig := &a.config.Tracing

	if err := tracing.InitTracing(tracingConfig, a.logger); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if tracingConfig.Enabled {
		a.logger.WithField("trace_exporter", tracingConfig.TraceExporter).
			WithField("metrics_exporter", tracingConfig.MetricsExporter).
			WithField("sampling_rate", tracingConfig.SamplingProbability).
			Info("Tracing initialized successfully")
	}

	return nil
}

// InitDB connects to the shared database and creates the owned tables
func (a *App) InitDB() error {
	if a.db != nil {
		return nil
	}

	password := a.config.Database.Password
	maskedPassword := ""
	if len(password) > 0 {
		maskedPassword = fmt.Sprintf("%c...%c", password[0], password[len(password)-1])
	}
	a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, user %s, sslmode %s, password: %s, dbname: %s",
		a.config.Database.Host, a.config.Database.Port, a.config.Database.User,
		a.config.Database.SSLMode, maskedPassword, a.config.Database.DBName))

	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := database.Connect(&a.config.Database, driverName)
	if err != nil {
		return err
	}

	if err := database.InitializeDatabase(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	a.db = db
	return nil
}

// InitMailer picks the notifier used when a coach gets a new client.
// With notifications off the mailer stays nil.
func (a *App) InitMailer() error {
	if a.mailerSet {
		return nil
	}
	a.mailerSet = true

	if !a.config.Notify.CoachOnAssign {
		a.logger.Info("Coach notifications disabled")
		return nil
	}

	if a.config.IsDevelopment() {
		a.mailer = mailer.NewConsoleMailer()
		a.logger.Info("Using console mailer for development")
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
	})
	a.logger.WithField("smtp_host", a.config.SMTP.Host).Info("Using SMTP mailer")
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database is not initialized")
	}

	a.clientRepo = repository.NewClientRepository(a.db)
	a.coachRepo = repository.NewCoachRepository(a.db)
	a.formProgressRepo = repository.NewFormProgressRepository(a.db)
	a.rosterRepo = repository.NewRosterRepository(a.db)
	a.mappingRepo = repository.NewMappingRepository(a.db)

	return nil
}

// InitServices initializes all services
func (a *App) InitServices() error {
	a.clientService = service.NewClientService(a.clientRepo)
	a.coachService = service.NewCoachService(a.coachRepo)
	a.rosterService = service.NewRosterService(a.rosterRepo)
	a.mappingService = service.NewMappingService(a.mappingRepo)

	// a nil mailer turns assignment notifications off
	a.assignmentService = service.NewAssignmentService(
		a.formProgressRepo,
		a.coachRepo,
		a.clientRepo,
		a.mailer,
		a.logger,
	)

	return nil
}

// InitHandlers registers every route on the mux
func (a *App) InitHandlers() error {
	httpHandler.NewHealthHandler(a.db, a.config.Version, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewClientHandler(a.clientService, a.assignmentService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewCoachHandler(a.coachService, a.rosterService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewPeopleHandler(a.rosterService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewMappingHandler(a.mappingService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewRosterHandler(a.rosterService, a.logger).RegisterRoutes(a.mux)

	return nil
}

// Handler returns the mux wrapped in the middleware chain, outermost first:
// CORS, request logging, tracing, graceful shutdown
func (a *App) Handler() http.Handler {
	var handler http.Handler = a.mux

	handler = a.gracefulShutdownMiddleware(handler)

	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
	}

	handler = middleware.RequestLogger(a.logger)(handler)
	handler = middleware.CORSMiddleware(a.config.CORSOrigin)(handler)

	return handler
}

// Start starts the HTTP server
func (a *App) Start() error {
	handler := a.Handler()

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).
		WithField("tracing", a.config.Tracing.Enabled).
		Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	if a.serverStarted != nil {
		close(a.serverStarted)
	}
	a.serverStarted = make(chan struct{})

	a.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	close(serverStarted)

	if a.config.Server.SSL.Enabled {
		a.logger.WithField("cert_file", a.config.Server.SSL.CertFile).Info("SSL enabled")
		return a.server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources()
	}

	a.logger.WithField("active_requests", a.getActiveRequestCount()).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = remaining - time.Second
			if shutdownTimeout < 0 {
				shutdownTimeout = 0
			}
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	serverShutdownDone := make(chan error, 1)
	go func() {
		a.logger.WithField("timeout", shutdownTimeout.String()).Info("Starting HTTP server shutdown")
		serverShutdownDone <- server.Shutdown(shutdownCtx)
	}()

	requestsDone := make(chan struct{})
	go func() {
		a.requestWg.Wait()
		close(requestsDone)
	}()

	var shutdownErr error

	select {
	case err := <-serverShutdownDone:
		shutdownErr = err
		a.logger.Info("HTTP server shutdown completed")
	case <-shutdownCtx.Done():
		a.logger.Warn("Shutdown timeout reached")
		shutdownErr = fmt.Errorf("shutdown timeout exceeded")
	}

	if shutdownErr == nil {
		select {
		case <-requestsDone:
		case <-time.After(2 * time.Second):
			if activeCount := a.getActiveRequestCount(); activeCount > 0 {
				a.logger.WithField("active_requests", activeCount).Warn("Some requests still active, proceeding with shutdown")
			}
		}
	}

	if cleanupErr := a.cleanupResources(); cleanupErr != nil {
		a.logger.WithField("error", cleanupErr.Error()).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}

	return shutdownErr
}

// cleanupResources closes the database connection
func (a *App) cleanupResources() error {
	if a.db == nil {
		return nil
	}

	if a.config.Tracing.Enabled {
		if err := ocsql.RecordStats(a.db, 5*time.Second); err != nil {
			a.logger.WithField("error", err.Error()).Error("Failed to record final database stats for tracing")
		}
	}

	a.logger.Info("Closing database connection")
	if err := a.db.Close(); err != nil {
		a.logger.WithField("error", err.Error()).Error("Error closing database connection")
		return err
	}

	return nil
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created.
// Returns false if ctx expires first.
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	if started == nil {
		a.logger.Error("serverStarted channel is nil - server initialization error")
		<-ctx.Done()
		return false
	}

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting Coachdesk API")

	steps := []func() error{
		a.InitTracing,
		a.InitDB,
		a.InitMailer,
		a.InitRepositories,
		a.InitServices,
		a.InitHandlers,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

func (a *App) GetConfig() *config.Config {
	return a.config
}

func (a *App) GetLogger() logger.Logger {
	return a.logger
}

func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

func (a *App) GetDB() *sql.DB {
	return a.db
}

func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}

func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
	a.logger.WithField("shutdown_timeout", timeout.String()).Info("Shutdown timeout configured")
}

// GetShutdownContext is cancelled when Shutdown starts
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks in-flight requests and refuses new
// ones once shutdown has started
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			httpHandler.WriteJSONError(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}

var _ AppInterface = (*App)(nil)
