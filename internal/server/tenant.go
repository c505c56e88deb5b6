package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	branchdomain "github.com/tatamihq/tatami/internal/branch/domain"
	provisioningdomain "github.com/tatamihq/tatami/internal/provisioning/domain"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
	userdomain "github.com/tatamihq/tatami/internal/user/domain"
)

type provisionResponse struct {
	Tenant    tenantdomain.View `json:"tenant"`
	AdminUser userdomain.View   `json:"admin_user"`
	Branch    branchdomain.View `json:"branch"`
}

func (s *Server) CreateTenant(c *gin.Context) {
	var req provisioningdomain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.provisioningSvc.CreateTenant(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, provisionResponse{
		Tenant:    tenantdomain.ViewOf(&result.Tenant),
		AdminUser: userdomain.ViewOf(&result.AdminUser),
		Branch:    branchdomain.ViewOf(&result.Branch),
	})
}

func (s *Server) GetTenant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tenant, err := s.tenantSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenantdomain.ViewOf(tenant))
}

type updateTenantRequest struct {
	Name         *string                `json:"name"`
	Domain       *string                `json:"domain"`
	Plan         *string                `json:"plan"`
	ContactEmail *string                `json:"contact_email"`
	ContactPhone *string                `json:"contact_phone"`
	Address      *string                `json:"address"`
	IsActive     *bool                  `json:"is_active"`
	Settings     *tenantdomain.Settings `json:"settings"`
}

func (s *Server) UpdateTenant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	patch := tenantdomain.Patch{
		Name:         req.Name,
		Domain:       req.Domain,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		IsActive:     req.IsActive,
		Settings:     req.Settings,
	}
	if req.Plan != nil {
		plan := tenantdomain.Plan(*req.Plan)
		patch.Plan = &plan
	}

	tenant, err := s.tenantSvc.Update(c.Request.Context(), id, patch)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenantdomain.ViewOf(tenant))
}

func parseID(c *gin.Context) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(c.Param("id"))
	if err != nil {
		AbortWithError(c, ErrNotFound)
		return 0, false
	}
	return id, true
}
