package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/tatamihq/tatami/internal/auth/domain"
)

type loginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	OrgDomain string `json:"org_domain"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, authdomain.ErrInvalidRequest)
		return
	}

	if s.loginLimiter.Enabled() {
		allowed, err := s.loginLimiter.Allow(c.Request.Context(), req.OrgDomain, req.Email)
		if err != nil {
			// Redis being down must not lock every tenant out.
			s.log.Warn("login limiter unavailable, allowing request")
			allowed = true
		}
		if !allowed {
			s.metrics.RecordLogin("rate_limited")
			AbortWithError(c, ErrTooManyRequests)
			return
		}
	}

	result, err := s.authSvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:     req.Email,
		Password:  req.Password,
		OrgDomain: req.OrgDomain,
	})
	if err != nil {
		s.metrics.RecordLogin(loginOutcome(err))
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordLogin("success")
	c.JSON(http.StatusOK, result)
}

func (s *Server) Me(c *gin.Context) {
	raw := bearerToken(c)
	if raw == "" {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	identity, err := s.authSvc.Authenticate(c.Request.Context(), raw)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, identity)
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, authdomain.ErrTenantInactive),
		errors.Is(err, authdomain.ErrLicenseExpired):
		return "license"
	case errors.Is(err, authdomain.ErrAccountSuspended),
		errors.Is(err, authdomain.ErrAccountInactive):
		return "account_state"
	default:
		return "error"
	}
}
