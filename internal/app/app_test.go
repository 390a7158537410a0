package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/config"
	"github.com/coachdesk/coachdesk/internal/domain/mocks"
	"github.com/coachdesk/coachdesk/pkg/mailer"
	pkgmocks "github.com/coachdesk/coachdesk/pkg/mocks"
)

func createTestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Version:     "test",
		CORSOrigin:  "*",
		Database: config.DatabaseConfig{
			User:     "postgres_test",
			Password: "postgres_test",
			Host:     "localhost",
			Port:     5432,
			DBName:   "coachdesk_test",
		},
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
	}
}

func newQuietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(l).AnyTimes()
	l.EXPECT().WithFields(gomock.Any()).Return(l).AnyTimes()
	l.EXPECT().Debug(gomock.Any()).AnyTimes()
	l.EXPECT().Info(gomock.Any()).AnyTimes()
	l.EXPECT().Warn(gomock.Any()).AnyTimes()
	l.EXPECT().Error(gomock.Any()).AnyTimes()
	return l
}

func TestNewApp(t *testing.T) {
	cfg := createTestConfig()

	app := NewApp(cfg)
	assert.NotNil(t, app)
	assert.Equal(t, cfg, app.GetConfig())
	assert.NotNil(t, app.GetLogger())
	assert.NotNil(t, app.GetMux())
	assert.Nil(t, app.GetDB())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = mockDB.Close() }()
	mockMailer := pkgmocks.NewMockMailer(ctrl)

	app = NewApp(cfg,
		WithLogger(mockLogger),
		WithMockDB(mockDB),
		WithMockMailer(mockMailer),
	)

	assert.Equal(t, mockLogger, app.GetLogger())
	assert.Equal(t, mockDB, app.GetDB())
	assert.Equal(t, mockMailer, app.GetMailer())
}

func TestAppInitMailer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("notifications disabled", func(t *testing.T) {
		cfg := createTestConfig()
		app := NewApp(cfg, WithLogger(newQuietLogger(ctrl)))

		require.NoError(t, app.InitMailer())
		assert.Nil(t, app.GetMailer())
	})

	t.Run("development uses console mailer", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Environment = "development"
		cfg.Notify.CoachOnAssign = true
		app := NewApp(cfg, WithLogger(newQuietLogger(ctrl)))

		require.NoError(t, app.InitMailer())
		assert.IsType(t, &mailer.ConsoleMailer{}, app.GetMailer())
	})

	t.Run("production uses smtp mailer", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Environment = "production"
		cfg.Notify.CoachOnAssign = true
		cfg.SMTP = config.SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com"}
		app := NewApp(cfg, WithLogger(newQuietLogger(ctrl)))

		require.NoError(t, app.InitMailer())
		assert.IsType(t, &mailer.SMTPMailer{}, app.GetMailer())
	})

	t.Run("injected mailer is kept", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Notify.CoachOnAssign = true
		mockMailer := pkgmocks.NewMockMailer(ctrl)
		app := NewApp(cfg, WithLogger(newQuietLogger(ctrl)), WithMockMailer(mockMailer))

		require.NoError(t, app.InitMailer())
		assert.Equal(t, mockMailer, app.GetMailer())
	})
}

func TestAppInitDB_KeepsInjectedDB(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = mockDB.Close() }()

	app := NewApp(createTestConfig(), WithLogger(newQuietLogger(ctrl)), WithMockDB(mockDB))
	require.NoError(t, app.InitDB())
	assert.Equal(t, mockDB, app.GetDB())
}

func TestAppInitRepositories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("requires a database", func(t *testing.T) {
		app := NewApp(createTestConfig(), WithLogger(newQuietLogger(ctrl)))
		err := app.InitRepositories()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is not initialized")
	})

	t.Run("builds every repository", func(t *testing.T) {
		mockDB, _, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = mockDB.Close() }()

		app := NewApp(createTestConfig(), WithLogger(newQuietLogger(ctrl)), WithMockDB(mockDB))
		require.NoError(t, app.InitRepositories())

		appImpl := app.(*App)
		assert.NotNil(t, appImpl.clientRepo)
		assert.NotNil(t, appImpl.coachRepo)
		assert.NotNil(t, appImpl.formProgressRepo)
		assert.NotNil(t, appImpl.rosterRepo)
		assert.NotNil(t, appImpl.mappingRepo)
	})
}

// initializedApp runs every init step except tracing and DB against a sqlmock DB
func initializedApp(t *testing.T, ctrl *gomock.Controller, cfg *config.Config) (*App, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	app := NewApp(cfg, WithLogger(newQuietLogger(ctrl)), WithMockDB(mockDB)).(*App)
	require.NoError(t, app.InitMailer())
	require.NoError(t, app.InitRepositories())
	require.NoError(t, app.InitServices())
	require.NoError(t, app.InitHandlers())
	return app, mock
}

func TestAppInitServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _ := initializedApp(t, ctrl, createTestConfig())

	assert.NotNil(t, app.clientService)
	assert.NotNil(t, app.coachService)
	assert.NotNil(t, app.assignmentService)
	assert.NotNil(t, app.rosterService)
	assert.NotNil(t, app.mappingService)
}

func TestAppHandler_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := createTestConfig()
	cfg.CORSOrigin = "https://admin.example.com"
	app, _ := initializedApp(t, ctrl, cfg)
	handler := app.Handler()

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.JSONEq(t, `{"success":true,"data":{"status":"ok","version":"test"}}`, rec.Body.String())
	})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/clients/assign-coach", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("missing owner on people", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/people", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"userId required"}`, rec.Body.String())
	})

	t.Run("unknown method", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/mappings", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestAppShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	app := NewApp(createTestConfig(), WithLogger(newQuietLogger(ctrl)), WithMockDB(mockDB))

	err = app.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := createTestConfig()
	cfg.Server.Port = 18080 + (time.Now().Nanosecond() % 1000)

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	app := NewApp(cfg, WithLogger(newQuietLogger(ctrl)), WithMockDB(mockDB))
	app.SetShutdownTimeout(2 * time.Second)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.True(t, app.WaitForServerStart(ctx), "server should have started within timeout")
	assert.True(t, app.IsServerCreated())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	assert.NoError(t, app.Shutdown(shutdownCtx))

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			t.Fatalf("server error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for server to stop")
	}
}

func TestWaitForServerStartNilChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := NewApp(createTestConfig(), WithLogger(newQuietLogger(ctrl))).(*App)

	app.serverMu.Lock()
	app.serverStarted = nil
	app.serverMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.False(t, app.WaitForServerStart(ctx))
}

func TestAppInitTracingEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := createTestConfig()
	cfg.Tracing.Enabled = true
	cfg.Tracing.TraceExporter = "none"
	cfg.Tracing.MetricsExporter = "none"

	app := NewApp(cfg, WithLogger(newQuietLogger(ctrl)))
	assert.NoError(t, app.InitTracing())
}

func TestGracefulShutdownMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := NewApp(createTestConfig(), WithLogger(newQuietLogger(ctrl))).(*App)

	wrapped := app.gracefulShutdownMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, int64(1), app.GetActiveRequestCount())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.Equal(t, int64(0), app.GetActiveRequestCount())

	app.shutdownCancel()
	assert.True(t, app.isShuttingDown())
	assert.Error(t, app.GetShutdownContext().Err())

	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Server is shutting down"}`, rec.Body.String())
}

func TestActiveRequestTracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := NewApp(createTestConfig(), WithLogger(newQuietLogger(ctrl))).(*App)
	assert.Equal(t, int64(0), app.GetActiveRequestCount())

	app.incrementActiveRequests()
	app.incrementActiveRequests()
	assert.Equal(t, int64(2), app.GetActiveRequestCount())

	app.decrementActiveRequests()
	app.decrementActiveRequests()
	assert.Equal(t, int64(0), app.GetActiveRequestCount())
}
