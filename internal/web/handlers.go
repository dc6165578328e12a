package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amirphiladam2/Actionable-sub001/internal/notify"
	"github.com/amirphiladam2/Actionable-sub001/internal/storage"
	"github.com/amirphiladam2/Actionable-sub001/internal/tasks"
)

const maxQuerySize = 10 << 10 // 10KB

// taskRequest is the body of create and update requests
type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
}

func (s *Server) apply(req taskRequest, task *tasks.Task) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", tasks.ErrInvalidCriteria)
	}
	task.Title = title
	task.Description = req.Description
	task.Category = strings.TrimSpace(req.Category)
	task.Completed = req.Completed

	task.Priority = tasks.PriorityMedium
	if req.Priority != "" {
		p, err := tasks.ParsePriority(req.Priority)
		if err != nil {
			return err
		}
		task.Priority = p
	}

	task.DueDate = nil
	if strings.TrimSpace(req.DueDate) != "" {
		task.DueDate = tasks.ParseTimestamp(req.DueDate, s.deps.Location)
		if task.DueDate == nil {
			return fmt.Errorf("%w: unparseable due_date %q", tasks.ErrInvalidCriteria, req.DueDate)
		}
	}
	return nil
}

// fail writes an error response with a status derived from err
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, tasks.ErrInvalidCriteria):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func (s *Server) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   msg,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListTasks(c *gin.Context) {
	query := c.Query("q")
	if len(query) > maxQuerySize {
		s.badRequest(c, "query exceeds maximum size of 10KB")
		return
	}

	showCompleted := false
	if raw := c.Query("show_completed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			s.badRequest(c, "show_completed must be a boolean")
			return
		}
		showCompleted = v
	}

	criteria, err := tasks.CriteriaInput{
		Categories:    c.QueryArray("category"),
		Priorities:    c.QueryArray("priority"),
		DateRange:     c.Query("range"),
		ShowCompleted: showCompleted,
		SortBy:        c.DefaultQuery("sort", s.deps.DefaultSort),
		SortOrder:     c.DefaultQuery("order", s.deps.DefaultOrder),
	}.Parse()
	if err != nil {
		s.fail(c, err)
		return
	}

	all, err := s.deps.Store.ListTasks(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	results := s.deps.Engine.Filter(all, criteria, query)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   query,
		"data":    results,
		"count":   len(results),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	all, err := s.deps.Store.ListTasks(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    s.deps.Engine.Stats(all),
	})
}

func (s *Server) handleGroups(c *gin.Context) {
	by := strings.ToLower(c.DefaultQuery("by", "date"))
	if by != "date" && by != "category" && by != "priority" {
		s.badRequest(c, "by must be one of date, category, priority")
		return
	}

	all, err := s.deps.Store.ListTasks(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	var groups any
	switch by {
	case "date":
		groups = s.deps.Engine.GroupByDate(all)
	case "category":
		groups = s.deps.Engine.GroupByCategory(all)
	case "priority":
		groups = s.deps.Engine.GroupByPriority(all)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"by":      by,
		"data":    groups,
	})
}

func (s *Server) handleUpcoming(c *gin.Context) {
	limit := s.deps.UpcomingLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.badRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	all, err := s.deps.Store.ListTasks(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	upcoming := s.deps.Engine.UpcomingTasks(all, limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    upcoming,
		"count":   len(upcoming),
	})
}

func (s *Server) handleGetTask(c *gin.Context) {
	task, err := s.deps.Store.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    task,
	})
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err.Error())
		return
	}

	var task tasks.Task
	if err := s.apply(req, &task); err != nil {
		s.fail(c, err)
		return
	}
	if err := s.deps.Store.CreateTask(c.Request.Context(), &task); err != nil {
		s.fail(c, err)
		return
	}

	s.deps.Notifier.Notify(c.Request.Context(), notify.Success("Task created", task.Title))
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    task,
	})
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	task, err := s.deps.Store.GetTask(ctx, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := s.apply(req, task); err != nil {
		s.fail(c, err)
		return
	}
	if err := s.deps.Store.UpdateTask(ctx, task); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    task,
	})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id := c.Param("id")
	if err := s.deps.Store.DeleteTask(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "task deleted",
	})
}

func (s *Server) handleCompleteTask(c *gin.Context) {
	// An empty body means "mark complete"
	body := struct {
		Completed *bool `json:"completed"`
	}{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			s.badRequest(c, err.Error())
			return
		}
	}
	completed := body.Completed == nil || *body.Completed

	ctx := c.Request.Context()
	id := c.Param("id")
	if err := s.deps.Store.SetCompleted(ctx, id, completed); err != nil {
		s.fail(c, err)
		return
	}
	task, err := s.deps.Store.GetTask(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}

	if completed {
		s.deps.Notifier.Notify(ctx, notify.Success("Task completed", task.Title))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    task,
	})
}

func (s *Server) handleGetProfile(c *gin.Context) {
	p, err := s.deps.Store.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    p,
	})
}

func (s *Server) handleSaveProfile(c *gin.Context) {
	var p storage.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		s.badRequest(c, err.Error())
		return
	}
	p.ID = c.Param("id")

	if err := s.deps.Store.SaveProfile(c.Request.Context(), &p); err != nil {
		s.fail(c, err)
		return
	}
	s.deps.Notifier.Notify(c.Request.Context(), notify.Success("Profile updated", p.DisplayName))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    p,
	})
}

func (s *Server) handleAuthCallback(c *gin.Context) {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(body.URL) == "" {
		s.badRequest(c, "url is required")
		return
	}
	if s.deps.Resolver == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "auth callback resolution is not configured",
		})
		return
	}

	ctx := c.Request.Context()
	outcome := s.deps.Resolver.Resolve(ctx, body.URL)
	if outcome.Success {
		s.deps.Notifier.Notify(ctx, notify.Success("Signed in", ""))
	} else {
		s.deps.Notifier.Notify(ctx, notify.Error("Sign-in failed", outcome.Error))
	}
	c.JSON(http.StatusOK, outcome)
}
