package api

import (
	"net/http"

	"pantrychef/internal/metrics"
	"pantrychef/internal/monitoring"
	"pantrychef/internal/optimizer"
	"pantrychef/internal/store"

	"github.com/gin-gonic/gin"
)

// Server is the HTTP surface over the catalog and the optimizer
type Server struct {
	router    *gin.Engine
	store     *store.Store
	optimizer *optimizer.Optimizer
	monitor   *monitoring.Monitor
	collector *metrics.Collector
}

// NewServer creates the API server. The store is the single storage handle;
// the optimizer receives it explicitly rather than reaching for any shared
// connection.
func NewServer(st *store.Store, collector *metrics.Collector) *Server {
	server := &Server{
		router:    gin.Default(),
		store:     st,
		optimizer: optimizer.New(st),
		monitor:   monitoring.NewMonitor(),
		collector: collector,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "PantryChef API is running"})
	})

	// Live optimization stream
	s.router.GET("/ws", s.handleWebSocket)

	api := s.router.Group("/api")
	{
		api.GET("/status", s.handleStatus)

		// Recipe catalog
		recipes := api.Group("/recipes")
		{
			recipes.GET("", s.ListRecipes)
			recipes.GET("/:id", s.GetRecipe)
			recipes.POST("", s.CreateRecipe)
			recipes.PUT("/:id", s.UpdateRecipe)
			recipes.DELETE("/:id", s.DeleteRecipe)
		}

		// Optimization
		optimize := api.Group("/optimize")
		{
			optimize.POST("/recipes", s.OptimizeRecipes)
			optimize.POST("/match-ingredients", s.MatchIngredients)
			optimize.POST("/substitutions", s.FindSubstitutions)
			optimize.POST("/add-substitution", s.AddSubstitution)
			optimize.POST("/recipe-with-substitutions", s.RecipeWithSubstitutions)
		}
	}
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// handleStatus returns the in-process runtime counters
func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
