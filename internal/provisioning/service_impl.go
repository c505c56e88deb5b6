package provisioning

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/tatamihq/tatami/internal/auth/password"
	branchdomain "github.com/tatamihq/tatami/internal/branch/domain"
	"github.com/tatamihq/tatami/internal/clock"
	"github.com/tatamihq/tatami/internal/provisioning/domain"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
	userdomain "github.com/tatamihq/tatami/internal/user/domain"
	dbpkg "github.com/tatamihq/tatami/pkg/db"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultBranchName     = "Main Dojo"
	defaultBranchCapacity = 100

	trialLicenseDays = 14
	paidLicenseDays  = 365
)

type service struct {
	log     *zap.Logger
	db      *gorm.DB
	tenants tenantdomain.Repository
	users   userdomain.Repository
	genID   *snowflake.Node
	clock   clock.Clock
}

func NewService(log *zap.Logger, db *gorm.DB, tenants tenantdomain.Repository, users userdomain.Repository, genID *snowflake.Node, clk clock.Clock) domain.Service {
	return &service{
		log:     log.Named("provisioning.service"),
		db:      db,
		tenants: tenants,
		users:   users,
		genID:   genID,
		clock:   clk,
	}
}

func (s *service) CreateTenant(ctx context.Context, req domain.Request) (*domain.Result, error) {
	name := strings.TrimSpace(req.Name)
	orgDomain := strings.TrimSpace(req.Domain)
	contactEmail := strings.TrimSpace(req.ContactEmail)
	adminEmail := strings.TrimSpace(req.AdminEmail)
	if name == "" || orgDomain == "" || contactEmail == "" || adminEmail == "" || req.AdminPassword == "" {
		return nil, domain.ErrMissingField
	}

	plan := tenantdomain.Plan(strings.TrimSpace(req.Plan))
	if plan == "" {
		plan = tenantdomain.PlanTrial
	}
	if !tenantdomain.ValidPlan(plan) {
		return nil, domain.ErrInvalidPlan
	}

	taken, err := s.tenants.DomainExists(ctx, orgDomain)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, tenantdomain.ErrDomainTaken
	}

	hashed, err := password.Hash(req.AdminPassword)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	tenant := tenantdomain.Tenant{
		ID:            s.genID.Generate(),
		Domain:        orgDomain,
		Name:          name,
		Plan:          plan,
		ContactEmail:  contactEmail,
		ContactPhone:  strings.TrimSpace(req.ContactPhone),
		Address:       strings.TrimSpace(req.Address),
		IsActive:      true,
		LicenseStart:  now,
		LicenseEnd:    now.AddDate(0, 0, licenseDays(plan)),
		Settings:      datatypes.NewJSONType(defaultSettings(plan)),
		LicenseLimits: datatypes.NewJSONType(defaultLimits(plan)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	admin := userdomain.User{
		ID:           s.genID.Generate(),
		TenantID:     tenant.ID,
		Email:        adminEmail,
		PasswordHash: hashed,
		Role:         userdomain.RoleSystemManager,
		Status:       userdomain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	branch := branchdomain.Branch{
		ID:        s.genID.Generate(),
		TenantID:  tenant.ID,
		Name:      defaultBranchName,
		ManagerID: admin.ID,
		Capacity:  defaultBranchCapacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	admin.BranchID = &branch.ID

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.tenants.WithTx(tx).Create(ctx, &tenant); err != nil {
			if dbpkg.IsDuplicateKeyErr(err) {
				return tenantdomain.ErrDomainTaken
			}
			return err
		}
		if err := s.users.WithTx(tx).Create(ctx, &admin); err != nil {
			if dbpkg.IsDuplicateKeyErr(err) {
				return userdomain.ErrEmailTaken
			}
			return err
		}
		if err := tx.Create(&branch).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("tenant provisioned",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("domain", tenant.Domain),
		zap.String("plan", string(plan)),
	)

	return &domain.Result{
		Tenant:    tenant,
		AdminUser: admin,
		Branch:    branch,
	}, nil
}

func licenseDays(plan tenantdomain.Plan) int {
	if plan == tenantdomain.PlanTrial {
		return trialLicenseDays
	}
	return paidLicenseDays
}

func defaultSettings(plan tenantdomain.Plan) tenantdomain.Settings {
	return tenantdomain.Settings{
		Currency: "BRL",
		Locale:   "pt-BR",
		Timezone: "America/Sao_Paulo",
		Features: tenantdomain.Features{
			ChampionshipManagement: plan != tenantdomain.PlanTrial,
			AttendanceTracking:     true,
		},
	}
}

func defaultLimits(plan tenantdomain.Plan) tenantdomain.LicenseLimits {
	switch plan {
	case tenantdomain.PlanPremium:
		return tenantdomain.LicenseLimits{
			Students:        tenantdomain.Unlimited,
			Coaches:         tenantdomain.Unlimited,
			Branches:        tenantdomain.Unlimited,
			Classes:         tenantdomain.Unlimited,
			Championships:   tenantdomain.Unlimited,
			WeightDivisions: tenantdomain.Unlimited,
			FightModalities: tenantdomain.Unlimited,
			Affiliations:    tenantdomain.Unlimited,
		}
	case tenantdomain.PlanStandard:
		return tenantdomain.LicenseLimits{
			Students:        300,
			Coaches:         20,
			Branches:        3,
			Classes:         50,
			Championships:   10,
			WeightDivisions: 20,
			FightModalities: 10,
			Affiliations:    10,
		}
	default:
		return tenantdomain.LicenseLimits{
			Students:        50,
			Coaches:         5,
			Branches:        1,
			Classes:         10,
			Championships:   2,
			WeightDivisions: 10,
			FightModalities: 5,
			Affiliations:    3,
		}
	}
}
