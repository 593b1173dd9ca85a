package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"fonebridge/internal/adapter/http/dto"
	"fonebridge/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const dbProbeTimeout = 2 * time.Second

// HealthCheck handles GET /api/health. The fone configuration flag,
// the database configuration flag and the database probe are computed
// independently so an outage of one never masks the others. Extra
// checkers (the redis rate limiter backend, when enabled) only
// contribute to the message; they gate no functionality.
func HealthCheck(gateway ports.FoneGateway, dbHealth ports.HealthChecker, extra ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		foneConfigured := gateway != nil && gateway.Configured()
		dbConfigured := dbHealth != nil

		dbOk := false
		if dbConfigured {
			probeCtx, cancel := context.WithTimeout(c.Request.Context(), dbProbeTimeout)
			dbOk = dbHealth.Ping(probeCtx) == nil
			cancel()
		}

		var problems []string
		if !foneConfigured {
			problems = append(problems, "fone node not configured")
		}
		if !dbConfigured {
			problems = append(problems, "database not configured")
		} else if !dbOk {
			problems = append(problems, "database unreachable")
		}

		for _, checker := range extra {
			if checker == nil {
				continue
			}
			probeCtx, cancel := context.WithTimeout(c.Request.Context(), dbProbeTimeout)
			err := checker.Ping(probeCtx)
			cancel()
			if err != nil {
				problems = append(problems, checker.Name()+" unreachable")
			}
		}

		message := "ok"
		if len(problems) > 0 {
			message = strings.Join(problems, "; ")
		}

		c.JSON(http.StatusOK, dto.HealthResponse{
			OK:             true,
			FoneConfigured: foneConfigured,
			DBConfigured:   dbConfigured,
			DBOk:           dbOk,
			Message:        message,
		})
	}
}
