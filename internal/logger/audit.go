package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// QueryAudit ghi lại một lần truy vấn analytics: domain nào, descriptor nào,
// mất bao lâu. Dùng cho đối soát khi số liệu hai lần gọi lệch nhau.
type QueryAudit struct {
	Domain    string                 `json:"domain"`    // revenue, acquisition, content, audience
	Operation string                 `json:"operation"` // summary, breakdown, funnel, ...
	Seed      string                 `json:"seed"`      // seed descriptor đã dùng để sinh dữ liệu
	IP        string                 `json:"ip"`
	Details   map[string]interface{} `json:"details"`
	Timestamp time.Time              `json:"timestamp"`
}

// LogQuery log một lần truy vấn analytics vào audit logger
func LogQuery(domain, operation, seed string, c fiber.Ctx, details map[string]interface{}) {
	auditLogger := GetAuditLogger()

	audit := QueryAudit{
		Domain:    domain,
		Operation: operation,
		Seed:      seed,
		IP:        c.IP(),
		Details:   details,
		Timestamp: time.Now(),
	}

	if audit.Details == nil {
		audit.Details = make(map[string]interface{})
	}
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	auditLogger.WithFields(logrus.Fields{
		"domain":    audit.Domain,
		"operation": audit.Operation,
		"seed":      audit.Seed,
		"ip":        audit.IP,
		"details":   audit.Details,
		"timestamp": audit.Timestamp,
	}).Info("Analytics query")
}

// LogQueryDuration ghi thời gian xử lý một truy vấn vào performance logger
func LogQueryDuration(domain, operation string, elapsed time.Duration) {
	GetPerformanceLogger().WithFields(logrus.Fields{
		"domain":      domain,
		"operation":   operation,
		"duration_ms": elapsed.Milliseconds(),
	}).Debug("Query generated")
}
