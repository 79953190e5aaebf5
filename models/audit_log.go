package models

import (
	"time"
)

// AuditLog records one intercepted request. Rows are written once by the
// audit middleware and never updated or deleted.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Endpoint    string    `gorm:"not null" json:"endpoint"`
	Method      string    `gorm:"not null" json:"method"`
	QueryParams string    `json:"query_params"`
	IPAddress   string    `json:"ip_address"`
	Country     string    `json:"country"`
	Timestamp   time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}
