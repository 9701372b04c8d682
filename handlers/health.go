package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports component status. The database check is a live ping;
// the model provider is reported as configured, not probed, to keep the
// endpoint cheap.
func Health(db *sql.DB, llmConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		if err := db.Ping(); err != nil {
			dbStatus = "unavailable"
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		model := "configured"
		if !llmConfigured {
			model = "not_configured"
		}

		c.JSON(status, gin.H{
			"status":    dbStatus,
			"time":      time.Now().UTC().Format(time.RFC3339),
			"database":  dbStatus,
			"model_api": model,
		})
	}
}
