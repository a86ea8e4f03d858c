package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	// Recovery sits inside the logger and metrics so recovered panics are
	// still logged and counted as 500s.
	r.Use(requestID(), s.requestLogger(), s.metrics.middleware(), s.recovery(), corsMiddleware(s.corsOrigins))

	r.GET("/health", s.health)
	r.GET("/metrics", s.metrics.handler())

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/create-pin", s.createPin)
	authGroup.POST("/login", s.login)
	authGroup.GET("/check-pin", s.checkPin)

	protected := api.Group("")
	protected.Use(s.authenticate())

	tasks := protected.Group("/tasks")
	tasks.GET("", s.listTasks)
	tasks.POST("", s.createTask)
	tasks.PUT("/:id", s.updateTask)
	tasks.PATCH("/:id/toggle", s.toggleTask)
	tasks.DELETE("/:id", s.deleteTask)

	expenses := protected.Group("/expenses")
	expenses.GET("", s.listExpenses)
	expenses.POST("", s.createExpense)
	expenses.GET("/summary/:year/:month", s.expenseSummary)
	expenses.DELETE("/:id", s.deleteExpense)

	checkins := protected.Group("/checkins")
	checkins.GET("", s.listCheckIns)
	checkins.POST("", s.createCheckIn)
	checkins.GET("/weekly-summary", s.weeklySummary)

	documents := protected.Group("/documents")
	documents.GET("", s.listDocuments)
	documents.POST("", s.uploadDocument)
	documents.GET("/:id/download", s.downloadDocument)
	documents.DELETE("/:id", s.deleteDocument)

	notes := protected.Group("/notes")
	notes.GET("", s.listNotes)
	notes.POST("", s.createNote)
	notes.PUT("/:id", s.updateNote)
	notes.DELETE("/:id", s.deleteNote)

	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: apiError{Code: CodeNotFound, Message: "Route not found"}})
	})

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Life OS API is running"})
}

func deleted(c *gin.Context, entity string) {
	c.JSON(http.StatusOK, gin.H{"message": entity + " deleted successfully"})
}
