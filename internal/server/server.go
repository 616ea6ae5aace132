package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Saanwar2002/Ideahero/internal/database"
	"github.com/Saanwar2002/Ideahero/internal/handlers"
	"github.com/Saanwar2002/Ideahero/internal/middleware"
)

type Server struct {
	db        database.Service
	handler   *handlers.Handler
	jwtSecret []byte
}

// New wires the handlers onto an injected database service and JWT secret.
func New(db database.Service, jwtSecret []byte) *Server {
	return &Server{
		db:        db,
		handler:   handlers.NewHandler(db.GetDB(), jwtSecret),
		jwtSecret: jwtSecret,
	}
}

// HTTPServer returns a configured HTTP server for the application routes.
func (s *Server) HTTPServer() *http.Server {
	router := s.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	return &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/auth/register", s.handler.Auth.Register)
		api.POST("/auth/login", s.handler.Auth.Login)

		// Curated idea routes (public reads)
		api.GET("/ideas", s.handler.Idea.GetIdeas)
		api.GET("/ideas/:id", s.handler.Idea.GetIdea)

		// Approved community submissions (public reads)
		api.GET("/ideas/community", s.handler.Submission.GetCommunityIdeas)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(s.jwtSecret))
		{
			// Auth protected routes
			protected.GET("/auth/me", s.handler.Auth.GetMe)
			protected.PUT("/auth/profile", s.handler.Auth.UpdateProfile)

			// Engagement on curated ideas
			protected.POST("/ideas/:id/vote", s.handler.Idea.VoteIdea)
			protected.POST("/ideas/:id/comment", s.handler.Idea.CommentIdea)

			// Submissions
			protected.POST("/ideas/submit", s.handler.Submission.SubmitIdea)
			protected.GET("/ideas/submitted", s.handler.Submission.GetMySubmissions)
			protected.GET("/ideas/submitted/:id", s.handler.Submission.GetSubmission)
			protected.PUT("/ideas/submitted/:id", s.handler.Submission.UpdateSubmission)
			protected.DELETE("/ideas/submitted/:id", s.handler.Submission.DeleteSubmission)
			protected.POST("/ideas/submitted/:id/vote", s.handler.Submission.VoteSubmission)
			protected.POST("/ideas/submitted/:id/comment", s.handler.Submission.CommentSubmission)

			// Reporting
			protected.GET("/user/dashboard", s.handler.Dashboard.GetDashboard)
			protected.GET("/user/analytics", s.handler.Dashboard.GetAnalytics)
		}
	}

	return r
}
