package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amirphiladam2/Actionable-sub001/internal/authcallback"
	"github.com/amirphiladam2/Actionable-sub001/internal/notify"
	"github.com/amirphiladam2/Actionable-sub001/internal/storage"
	"github.com/amirphiladam2/Actionable-sub001/internal/tasks"
)

// TaskStore is the persistence the API needs
type TaskStore interface {
	CreateTask(ctx context.Context, task *tasks.Task) error
	GetTask(ctx context.Context, id string) (*tasks.Task, error)
	ListTasks(ctx context.Context) ([]tasks.Task, error)
	UpdateTask(ctx context.Context, task *tasks.Task) error
	SetCompleted(ctx context.Context, id string, completed bool) error
	DeleteTask(ctx context.Context, id string) error
	SaveProfile(ctx context.Context, p *storage.Profile) error
	GetProfile(ctx context.Context, id string) (*storage.Profile, error)
}

// CallbackResolver turns an auth callback URL into an outcome
type CallbackResolver interface {
	Resolve(ctx context.Context, rawURL string) authcallback.Outcome
}

// TaskEngine is the query surface of tasks.Engine
type TaskEngine interface {
	Filter(list []tasks.Task, criteria tasks.FilterCriteria, query string) []tasks.Task
	Stats(list []tasks.Task) tasks.TaskStats
	GroupByDate(list []tasks.Task) tasks.DateGroups
	GroupByCategory(list []tasks.Task) []tasks.CategoryGroup
	GroupByPriority(list []tasks.Task) tasks.PriorityGroups
	UpcomingTasks(list []tasks.Task, limit int) []tasks.Task
}

// Deps are the collaborators of the API server
type Deps struct {
	Store    TaskStore
	Resolver CallbackResolver
	Notifier notify.Notifier
	Engine   TaskEngine
	Logger   *zap.Logger

	// Location is used to read due dates submitted without a zone
	Location *time.Location
	// UpcomingLimit is used when /api/tasks/upcoming has no limit
	UpcomingLimit int
	// DefaultSort and DefaultOrder apply when a list request omits them
	DefaultSort  string
	DefaultOrder string
}

// Server is the actionable JSON API server
type Server struct {
	deps   Deps
	logger *zap.Logger
	router *gin.Engine
}

// NewServer creates a new API server
func NewServer(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.Discard
	}
	if deps.Engine == nil {
		deps.Engine = &tasks.Engine{Location: deps.Location}
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(deps.Logger))

	s := &Server{
		deps:   deps,
		logger: deps.Logger,
		router: router,
	}

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/tasks", s.handleListTasks)
		api.GET("/tasks/stats", s.handleStats)
		api.GET("/tasks/groups", s.handleGroups)
		api.GET("/tasks/upcoming", s.handleUpcoming)
		api.GET("/tasks/:id", s.handleGetTask)
		api.POST("/tasks", s.handleCreateTask)
		api.PUT("/tasks/:id", s.handleUpdateTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)
		api.POST("/tasks/:id/complete", s.handleCompleteTask)

		api.GET("/profile/:id", s.handleGetProfile)
		api.PUT("/profile/:id", s.handleSaveProfile)

		api.POST("/auth/callback", s.handleAuthCallback)
	}

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
