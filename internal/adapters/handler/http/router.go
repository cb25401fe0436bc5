package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// StatePinger reports whether the backing state store is reachable. Nil means
// the store has no connectivity to check (in-memory).
type StatePinger interface {
	Ping() error
}

type RouterDependencies struct {
	HabitHandler   *HabitHandler
	TrackerHandler *TrackerHandler
	StatsHandler   *StatsHandler
	InsightHandler *InsightHandler
	ExportHandler  *ExportHandler
	ProfileHandler *ProfileHandler
	State          StatePinger
	StartTime      time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		storeStatus := "connected"
		if deps.State != nil && deps.State.Ping() != nil {
			storeStatus = "unreachable"
		}

		statusCode := 200
		if storeStatus == "unreachable" {
			statusCode = 503
		}

		c.JSON(statusCode, gin.H{
			"status": "ok",
			"store":  storeStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	apiV1 := router.Group("/api/v1")

	deps.HabitHandler.RegisterRoutes(apiV1)
	deps.TrackerHandler.RegisterRoutes(apiV1)
	deps.StatsHandler.RegisterRoutes(apiV1)
	deps.InsightHandler.RegisterRoutes(apiV1)
	deps.ExportHandler.RegisterRoutes(apiV1)
	deps.ProfileHandler.RegisterRoutes(apiV1)

	return router
}
