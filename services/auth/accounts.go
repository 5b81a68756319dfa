package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hdmonks/models"
	"hdmonks/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultAuthService) RegisterPartner(ctx context.Context, req models.PartnerRegistration) (*models.Principal, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	p := &models.Principal{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Partners.Create(ctx, p); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Partner registered", zap.String("id", p.ID), zap.String("username", p.Username))
	p.PasswordHash = ""
	return p, nil
}

// EnsureDefaultAdmin creates the bootstrap admin account when no admin with
// that username exists. An empty password disables seeding.
func (s *DefaultAuthService) EnsureDefaultAdmin(ctx context.Context, username, email, password string) error {
	logger := utils.GetLogger()
	if username == "" || password == "" {
		logger.Warn("DEFAULT_ADMIN_PASSWORD not set, skipping default admin seeding")
		return nil
	}

	existing, err := s.Admins.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	err = s.Admins.Create(ctx, &models.Principal{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		Name:         "Administrator",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	logger.Info("Default admin account created", zap.String("username", username))
	return nil
}
