package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
)

// SnapshotPersistence saves a state snapshot after every successful mutating
// request. Persistence failures are logged, never surfaced: the mutation
// already committed and the in-memory state stays authoritative.
func SnapshotPersistence(snapshotSvc portssvc.SnapshotSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ctx := c.Request.Context()
		if err := snapshotSvc.Persist(ctx); err != nil {
			GetLoggerFromCtx(ctx).Error("Failed to persist snapshot", slog.String("error", err.Error()))
		}
	}
}
