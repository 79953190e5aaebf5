package middleware

import (
	"encoding/json"
	"log"

	"restodir-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditMiddleware writes one audit row per intercepted request before the
// handler runs. The write is strictly best-effort: a failed insert is logged
// and the request proceeds exactly as on success, so the audit subsystem can
// never change the response or block the primary operation.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := models.AuditLog{
			Endpoint:    c.Request.URL.Path,
			Method:      c.Request.Method,
			QueryParams: captureQueryParams(c),
			IPAddress:   c.ClientIP(),
			// real geo lookup never shipped; every row carries the stub
			Country: "Unknown",
		}

		if err := db.Create(&entry).Error; err != nil {
			log.Printf("Failed to create audit log: %v", err)
		}

		c.Next()
	}
}

// captureQueryParams serializes the query string as a JSON object. Repeated
// keys keep all their values.
func captureQueryParams(c *gin.Context) string {
	values := c.Request.URL.Query()
	params := make(map[string]interface{}, len(values))
	for key, vals := range values {
		if len(vals) == 1 {
			params[key] = vals[0]
		} else {
			params[key] = vals
		}
	}

	data, err := json.Marshal(params)
	if err != nil {
		return "{}"
	}
	return string(data)
}
