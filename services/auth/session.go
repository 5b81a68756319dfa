package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hdmonks/models"
	"hdmonks/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Authenticate checks the password and opens a new session. Any earlier
// session of the same principal is superseded.
func (s *DefaultAuthService) Authenticate(ctx context.Context, role models.Role, username, password string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()
	repo, err := s.repoFor(role)
	if err != nil {
		return nil, err
	}

	p, err := repo.GetByUsername(ctx, username)
	if err != nil {
		logger.Error("Authenticate: failed to fetch principal", zap.String("role", string(role)), zap.Error(err))
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if p == nil || !utils.CheckPassword(p.PasswordHash, password) {
		return nil, models.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateToken(s.Secret, p.ID, p.Username, role, s.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	// A cached hit is trusted without a store lookup, so the old session
	// must leave the cache before the new one is recorded.
	if p.TokenHash != "" {
		if err := s.Cache.Delete(ctx, role, p.TokenHash); err != nil {
			logger.Error("Authenticate: failed to evict superseded session", zap.String("id", p.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to evict superseded session: %w", err)
		}
	}
	if err := repo.SetTokenHash(ctx, p.ID, tokenHash); err != nil {
		return nil, err
	}
	if err := s.Cache.Set(ctx, role, tokenHash, p.ID, s.TTL); err != nil {
		logger.Warn("Authenticate: failed to cache session", zap.Error(err))
	}

	p.PasswordHash, p.TokenHash = "", ""
	logger.Info("Principal logged in", zap.String("role", string(role)), zap.String("id", p.ID))
	return &models.AuthResponse{
		Token:     token,
		Principal: *p,
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify returns the session for a token minted for role.
func (s *DefaultAuthService) Verify(ctx context.Context, role models.Role, token string) (*models.Session, error) {
	logger := utils.GetLogger()

	claims, err := utils.ParseToken(s.Secret, token)
	if err != nil {
		return nil, err
	}
	if claims.Role != role {
		return nil, fmt.Errorf("%w: token is not valid for %s endpoints", models.ErrInvalidToken, role)
	}
	repo, err := s.repoFor(role)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		PrincipalID: claims.Subject,
		Username:    claims.Username,
		Role:        role,
		ExpiresAt:   time.Unix(claims.ExpiresAt, 0).UTC(),
	}
	tokenHash := utils.HashToken(token)

	cached, err := s.Cache.Get(ctx, role, tokenHash)
	if err != nil {
		logger.Warn("Verify: session cache unavailable, checking store", zap.Error(err))
	} else if cached == claims.Subject {
		return session, nil
	}

	p, err := repo.GetByID(ctx, claims.Subject, bson.M{"id": 1, "username": 1, "token_hash": 1})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: principal no longer exists", models.ErrInvalidToken)
		}
		return nil, err
	}
	if p.TokenHash == "" || p.TokenHash != tokenHash {
		return nil, fmt.Errorf("%w: session has been revoked", models.ErrInvalidToken)
	}
	session.Username = p.Username

	if ttl := time.Until(session.ExpiresAt); ttl > 0 {
		if err := s.Cache.Set(ctx, role, tokenHash, p.ID, ttl); err != nil {
			logger.Warn("Verify: failed to cache session", zap.Error(err))
		}
	}
	return session, nil
}

// Logout revokes the session the token belongs to.
func (s *DefaultAuthService) Logout(ctx context.Context, session *models.Session, token string) error {
	repo, err := s.repoFor(session.Role)
	if err != nil {
		return err
	}
	tokenHash := utils.HashToken(token)
	if err := repo.ClearTokenHash(ctx, session.PrincipalID, tokenHash); err != nil {
		return err
	}
	// ClearTokenHash is idempotent, so a client may retry after this fails.
	if err := s.Cache.Delete(ctx, session.Role, tokenHash); err != nil {
		utils.GetLogger().Error("Logout: failed to evict cached session", zap.String("id", session.PrincipalID), zap.Error(err))
		return fmt.Errorf("failed to evict session: %w", err)
	}
	return nil
}
