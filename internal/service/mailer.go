package service

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strings"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
)

//go:generate mockery --name Mailer --output ./mocks --outpkg mocks --case=underscore
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// --- LogMailer ---
// 開発環境用。送信せずにログへ出力する
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// --- SmtpMailer ---
type SmtpMailer struct {
	cfg *config.SMTPConfig
}

func NewSmtpMailer(cfg *config.SMTPConfig) *SmtpMailer {
	return &SmtpMailer{cfg: cfg}
}

func (m *SmtpMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	logger.Debug("Attempting to send email via SMTP", "smtp_addr", addr, "from", m.cfg.From, "to", to)

	// 開発用SMTP (MailHog等) を想定し、認証なしの平文接続で送る
	c, err := smtp.Dial(addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err, "addr", addr)
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer c.Close()

	if err = c.Mail(m.cfg.From); err != nil {
		logger.Error("Failed to set MAIL FROM", "error", err, "from", m.cfg.From)
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err = c.Rcpt(to); err != nil {
		logger.Error("Failed to set RCPT TO", "error", err, "to", to)
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	wc, err := c.Data()
	if err != nil {
		logger.Error("Failed to open data writer", "error", err)
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err = wc.Write([]byte(buildMessage(m.cfg.From, to, subject, body))); err != nil {
		wc.Close()
		logger.Error("Failed to write email data", "error", err)
		return fmt.Errorf("smtp write: %w", err)
	}
	if err = wc.Close(); err != nil {
		logger.Error("Failed to close data writer", "error", err)
		return fmt.Errorf("smtp close: %w", err)
	}
	if err = c.Quit(); err != nil {
		logger.Warn("SMTP QUIT failed", "error", err)
	}

	logger.Info("Email sent successfully via SMTP", "to", to, "subject", subject)
	return nil
}

// buildMessage は日本語の件名・本文を送れるよう UTF-8 のヘッダーを付けます
func buildMessage(from, to, subject, body string) string {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.BEncoding.Encode("UTF-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return b.String()
}

// --- NewMailer ファクトリ関数 ---
func NewMailer(cfg *config.Config) Mailer {
	logger := slog.Default()
	switch cfg.Mailer.Type {
	case "smtp":
		logger.Info("Initializing SMTP mailer...")
		return NewSmtpMailer(&cfg.SMTP)
	case "ses":
		logger.Info("Initializing SES mailer...")
		m, err := NewSESMailer(context.Background(), cfg)
		if err != nil {
			logger.Error("Failed to initialize SES mailer, falling back to LogMailer", "error", err)
			return &LogMailer{}
		}
		return m
	case "log", "":
		logger.Info("Initializing Log mailer...")
		return &LogMailer{}
	default:
		logger.Warn("Unknown mailer type, defaulting to LogMailer", "type", cfg.Mailer.Type)
		return &LogMailer{}
	}
}

// --- メール本文 ---

func welcomeMail(appName string, user *model.User) (string, string) {
	subject := fmt.Sprintf("【%s】ご登録ありがとうございます", appName)
	body := fmt.Sprintf("%s さん\n\n%s へのご登録ありがとうございます。\n毎日の日記とクイズで日本語を楽しく学びましょう。\n\nユーザー名: %s",
		user.Nickname, appName, user.Username)
	return subject, body
}

func farewellMail(appName string, user *model.User) (string, string) {
	subject := fmt.Sprintf("【%s】退会手続きが完了しました", appName)
	body := fmt.Sprintf("%s さん\n\n%s をご利用いただきありがとうございました。\n退会手続きが完了しました。データは一定期間後に完全に削除されます。",
		user.Nickname, appName)
	return subject, body
}
