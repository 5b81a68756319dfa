package admin

import (
	"context"
	"fmt"
	"strings"

	"hdmonks/models"
	"hdmonks/utils"

	"go.uber.org/zap"
)

// GetSettings returns the stored settings for admin screens, or the
// defaults when nothing has been saved yet. The SMTP password is masked.
func (s *DefaultAdminService) GetSettings(ctx context.Context) (models.Settings, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	return settings.Redacted(), nil
}

// PublicSettings never exposes mail server fields.
func (s *DefaultAdminService) PublicSettings(ctx context.Context) (models.Settings, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	return settings.Public(), nil
}

func (s *DefaultAdminService) UpdateSettings(ctx context.Context, upd models.SettingsUpdate) (models.Settings, error) {
	if upd.CompanyEmail != nil {
		if err := utils.ValidateVar(strings.TrimSpace(*upd.CompanyEmail), "omitempty,email"); err != nil {
			return models.Settings{}, fmt.Errorf("%w: company_email is not a valid email address", models.ErrValidation)
		}
	}
	if upd.SMTPPort != nil && (*upd.SMTPPort < 0 || *upd.SMTPPort > 65535) {
		return models.Settings{}, fmt.Errorf("%w: smtp_port out of range", models.ErrValidation)
	}
	// The admin form echoes the masked password back when it was not edited.
	if upd.SMTPPassword != nil && *upd.SMTPPassword == "********" {
		upd.SMTPPassword = nil
	}

	settings, err := s.Settings.Upsert(ctx, upd)
	if err != nil {
		return models.Settings{}, err
	}
	utils.GetLogger().Info("Site settings updated", zap.String("company", settings.CompanyName))
	return settings.Redacted(), nil
}

func (s *DefaultAdminService) load(ctx context.Context) (models.Settings, error) {
	stored, err := s.Settings.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	if stored == nil {
		return models.DefaultSettings(), nil
	}
	if stored.SocialLinks == nil {
		stored.SocialLinks = map[string]string{}
	}
	return *stored, nil
}
