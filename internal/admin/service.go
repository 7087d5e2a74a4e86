package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/medihouse/medihouse-backend/pkg/auth"
	"github.com/medihouse/medihouse-backend/pkg/config"
	"github.com/medihouse/medihouse-backend/pkg/db"
	"github.com/medihouse/medihouse-backend/pkg/db/models"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
	"github.com/medihouse/medihouse-backend/pkg/logger"
	"github.com/medihouse/medihouse-backend/pkg/security"
)

const lowStockThreshold = 10

const (
	defaultSetupEmail = "admin@medihouse.com"
	defaultSetupName  = "Admin User"
)

// Profile is the public admin identity returned on login.
type Profile struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResult carries the minted token and the admin profile.
type LoginResult struct {
	Token string  `json:"token"`
	Admin Profile `json:"admin"`
}

// SetupInput seeds the first admin account. Empty fields fall back to
// the bootstrap defaults.
type SetupInput struct {
	Email    string
	Password string
	Name     string
}

// Service exposes admin authentication and dashboard reads.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Setup(ctx context.Context, input SetupInput) (*Profile, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	repo Repository
	jwt  config.JWTConfig
	logg *logger.Logger
	now  func() time.Time
}

// NewService builds the admin service.
func NewService(repo Repository, jwt config.JWTConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admin repository required")
	}
	return &service{repo: repo, jwt: jwt, logg: logg, now: time.Now}, nil
}

// Login authenticates by email and password. Unknown users and wrong
// passwords return the same message so the endpoint cannot be used to
// enumerate accounts.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load admin user")
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "Account is disabled")
	}
	if !security.VerifyPassword(password, user.PasswordHash) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid email or password")
	}

	now := s.now()
	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update last login")
	}

	token, err := auth.MintAccessToken(s.jwt, now, auth.AccessTokenPayload{
		AdminID: user.ID,
		Email:   user.Email,
		Name:    user.Name,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithAdminID(ctx, user.ID), "admin.login")
	}

	return &LoginResult{
		Token: token,
		Admin: Profile{ID: user.ID, Email: user.Email, Name: user.Name},
	}, nil
}

// Setup creates the bootstrap admin account. It conflicts when the
// email is already taken instead of overwriting credentials.
func (s *service) Setup(ctx context.Context, input SetupInput) (*Profile, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		email = defaultSetupEmail
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = defaultSetupName
	}
	if input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Password is required")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check existing admin")
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Admin user already exists")
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// A concurrent setup can win the race between the existence
		// check and the insert; surface it as the same conflict.
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Admin user already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create admin user")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithAdminID(ctx, user.ID), "admin.setup")
	}

	return &Profile{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

func (s *service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats, err := s.repo.DashboardStats(ctx, lowStockThreshold)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load dashboard stats")
	}
	return stats, nil
}
