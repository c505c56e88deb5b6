package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tatamihq/tatami/internal/auth/domain"
	"github.com/tatamihq/tatami/internal/auth/password"
	"github.com/tatamihq/tatami/internal/auth/token"
	"github.com/tatamihq/tatami/internal/clock"
	"github.com/tatamihq/tatami/internal/license"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
	userdomain "github.com/tatamihq/tatami/internal/user/domain"
	"go.uber.org/zap"
)

type Service struct {
	log       *zap.Logger
	tenantsvc tenantdomain.Service
	users     userdomain.Repository
	signer    *token.Signer
	clock     clock.Clock
}

func New(log *zap.Logger, tenantsvc tenantdomain.Service, users userdomain.Repository, signer *token.Signer, clk clock.Clock) domain.Service {
	return &Service{
		log:       log.Named("auth.service"),
		tenantsvc: tenantsvc,
		users:     users,
		signer:    signer,
		clock:     clk,
	}
}

// Login runs the authentication state machine. The steps are strictly
// sequential and short-circuit on first failure; in particular the license
// gate runs before any credential work so an expired tenant never leaks
// whether a user exists. Everything before the lastLoginAt update is
// read-only.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email := strings.TrimSpace(req.Email)
	orgDomain := strings.TrimSpace(req.OrgDomain)
	if email == "" || req.Password == "" || orgDomain == "" {
		return nil, domain.ErrInvalidRequest
	}

	tenant, err := s.tenantsvc.ResolveByDomain(ctx, orgDomain)
	if err != nil {
		if errors.Is(err, tenantdomain.ErrNotFound) || errors.Is(err, tenantdomain.ErrInvalidDomain) {
			return nil, domain.ErrInvalidTenantDomain
		}
		return nil, err
	}

	now := s.clock.Now()
	switch license.ReasonIfNot(tenant, now) {
	case license.ReasonInactive:
		return nil, domain.ErrTenantInactive
	case license.ReasonExpired:
		return nil, domain.ErrLicenseExpired
	}

	user, err := s.users.FindByTenantAndEmail(ctx, tenant.ID, email)
	if err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	switch user.Status {
	case userdomain.StatusSuspended:
		return nil, domain.ErrAccountSuspended
	case userdomain.StatusInactive:
		return nil, domain.ErrAccountInactive
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, tenant.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	raw := s.signer.Sign(token.Claims{
		UserID:   user.ID,
		TenantID: tenant.ID,
		IssuedAt: now,
	})

	s.log.Info("login succeeded",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("user_id", user.ID.String()),
	)

	return &domain.LoginResult{
		Token:  raw,
		User:   userdomain.ViewOf(user),
		Tenant: tenantdomain.ViewOf(tenant),
	}, nil
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.Identity, error) {
	claims, err := s.signer.Verify(rawToken, s.clock.Now())
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			return nil, token.ErrInvalidToken
		}
		return nil, err
	}
	if user.TenantID != claims.TenantID {
		return nil, token.ErrInvalidToken
	}

	tenant, err := s.tenantsvc.GetByID(ctx, claims.TenantID)
	if err != nil {
		if errors.Is(err, tenantdomain.ErrNotFound) {
			return nil, token.ErrInvalidToken
		}
		return nil, err
	}

	return &domain.Identity{
		User:   userdomain.ViewOf(user),
		Tenant: tenantdomain.ViewOf(tenant),
	}, nil
}
