package httpx

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tasks-api/internal/task"
)

type Server struct {
	R     *gin.Engine
	Tasks task.Repo
	Now   func() time.Time
}

func NewServer(repo task.Repo) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// Dev CORS so a local frontend can talk to us directly
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	r.Use(Metrics())

	s := &Server{R: r, Tasks: repo, Now: time.Now}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": s.Now().UTC()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/tasks", s.listTasks)
		api.POST("/tasks", s.createTask)
	}

	return s
}

func (s *Server) listTasks(c *gin.Context) {
	ctx := c.Request.Context()
	tasks, err := s.Tasks.List(ctx)
	if err != nil {
		log.Printf("list tasks: %v", err)
		c.JSON(500, gin.H{"error": "Failed to retrieve tasks"})
		return
	}
	c.JSON(200, tasks)
}

func (s *Server) createTask(c *gin.Context) {
	var req struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(400, gin.H{"error": "Title is required"})
		return
	}
	ctx := c.Request.Context()
	id, err := s.Tasks.Create(ctx, req.Title, req.Description)
	if err != nil {
		log.Printf("create task: %v", err)
		c.JSON(500, gin.H{"error": "Failed to create task"})
		return
	}
	c.JSON(201, gin.H{
		"message":     "Task created successfully",
		"id":          id,
		"title":       req.Title,
		"description": req.Description,
	})
}
