package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/tatamihq/tatami/internal/auth/domain"
	authtoken "github.com/tatamihq/tatami/internal/auth/token"
	provisioningdomain "github.com/tatamihq/tatami/internal/provisioning/domain"
	quotadomain "github.com/tatamihq/tatami/internal/quota/domain"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
	userdomain "github.com/tatamihq/tatami/internal/user/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrNotFound           = errors.New("not_found")
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrServiceUnavailable = errors.New("service_unavailable")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// mapError translates domain errors into transport responses. Login
// failures keep their domain messages on the wire because the distinct
// wordings (inactive tenant vs expired license vs suspended account) are
// part of the product contract; everything unrecognized collapses to a
// generic 500.
func mapError(err error) (int, errorPayload) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authtoken.ErrInvalidToken),
		errors.Is(err, authtoken.ErrTokenExpired),
		errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: err.Error(),
		}
	case errors.Is(err, authdomain.ErrTenantInactive),
		errors.Is(err, authdomain.ErrLicenseExpired),
		errors.Is(err, authdomain.ErrAccountSuspended),
		errors.Is(err, authdomain.ErrAccountInactive),
		errors.Is(err, ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: err.Error(),
		}
	case errors.Is(err, tenantdomain.ErrDomainTaken),
		errors.Is(err, userdomain.ErrEmailTaken):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "rate_limited",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "service_unavailable",
			Message: "service unavailable",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, authdomain.ErrInvalidRequest),
		errors.Is(err, authdomain.ErrInvalidTenantDomain),
		errors.Is(err, provisioningdomain.ErrMissingField),
		errors.Is(err, provisioningdomain.ErrInvalidPlan),
		errors.Is(err, tenantdomain.ErrInvalidDomain),
		errors.Is(err, tenantdomain.ErrInvalidPlan),
		errors.Is(err, quotadomain.ErrUnknownCategory):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, tenantdomain.ErrNotFound),
		errors.Is(err, userdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
