package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"hdmonks/config"
	"hdmonks/models"
	"hdmonks/utils"

	"go.uber.org/zap"
)

// SMTPConfig holds the outgoing mail server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPConfigFromApp reads the SMTP_* keys of the loaded configuration.
func SMTPConfigFromApp() SMTPConfig {
	from := config.AppConfig.FromEmail
	if from == "" {
		from = config.AppConfig.SMTPUsername
	}
	return SMTPConfig{
		Host:     config.AppConfig.SMTPServer,
		Port:     config.AppConfig.SMTPPort,
		Username: config.AppConfig.SMTPUsername,
		Password: config.AppConfig.SMTPPassword,
		From:     from,
	}
}

func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// SMTPMailer sends messages synchronously. When SMTP is not configured it
// logs the message and reports success.
type SMTPMailer struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if !cfg.Configured() {
		utils.GetLogger().Warn("Email service not configured, notifications will be logged only")
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *SMTPMailer) Dispatch(ctx context.Context, msg models.EmailMessage) error {
	logger := utils.GetLogger()
	if !m.cfg.Configured() {
		logger.Info("Email not sent, SMTP not configured",
			zap.String("kind", msg.Kind), zap.String("to", msg.To), zap.String("subject", msg.Subject))
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := sanitizeHeader(msg.To)
	if to == "" {
		return fmt.Errorf("%w: email recipient is empty", models.ErrValidation)
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.From, []string{to}, buildMIME(m.cfg.From, to, msg)); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	logger.Info("Email sent", zap.String("kind", msg.Kind), zap.String("to", to))
	return nil
}

func buildMIME(from, to string, msg models.EmailMessage) []byte {
	contentType := "text/plain"
	if msg.HTML {
		contentType = "text/html"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", sanitizeHeader(from)))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(msg.Subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: %s; charset=utf-8\r\n\r\n", contentType))
	sb.WriteString(msg.Body)
	sb.WriteString("\r\n")
	return []byte(sb.String())
}

// sanitizeHeader keeps a header value on one line.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
