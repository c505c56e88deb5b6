package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	quotadomain "github.com/tatamihq/tatami/internal/quota/domain"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
)

type usageResponse struct {
	Tenant tenantdomain.View          `json:"tenant"`
	Usage  *quotadomain.UsageSnapshot `json:"usage"`
}

func (s *Server) TenantUsage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tenant, err := s.tenantSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	snapshot, err := s.quotaSvc.Snapshot(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, usageResponse{
		Tenant: tenantdomain.ViewOf(tenant),
		Usage:  snapshot,
	})
}

func (s *Server) TenantUsageCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	decision, err := s.quotaSvc.CheckAdmission(c.Request.Context(), id, quotadomain.Category(c.Param("category")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}
