package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"renthub-backend/internal/logger"
)

// EmailConfig holds the SendGrid sender settings.
type EmailConfig struct {
	APIKey    string `yaml:"sendgrid_api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

type emailService struct {
	cfg EmailConfig
}

func NewEmailService(cfg EmailConfig) EmailService {
	return &emailService{cfg: cfg}
}

func (s *emailService) SendRentReceipt(ctx context.Context, email, name, itemName string, totalPrice int) error {
	subject := fmt.Sprintf("Your rental receipt for %s", itemName)
	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for returning %s. The total charge for this rental is %d.\n\nRentHub",
		name, itemName, totalPrice,
	)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name, itemName string, deadline time.Time) error {
	subject := fmt.Sprintf("Reminder: %s is overdue", itemName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour rental of %s was due back on %s. Please return it as soon as possible.\n\nRentHub",
		name, itemName, deadline.Format("Jan 2, 2006 15:04 MST"),
	)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) send(ctx context.Context, email, name, subject, body string) error {
	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(s.cfg.APIKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", email, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send email to %s: sendgrid status %d", email, resp.StatusCode)
	}
	return nil
}

// logEmailService is the dev stand-in used when no SendGrid key is
// configured. It logs what would have been sent and reports success.
type logEmailService struct{}

func NewLogEmailService() EmailService {
	return logEmailService{}
}

func (logEmailService) SendRentReceipt(_ context.Context, email, _ string, itemName string, totalPrice int) error {
	logger.Info("rent receipt (not sent, email disabled)",
		"to", email, "item", itemName, "total_price", totalPrice)
	return nil
}

func (logEmailService) SendOverdueReminder(_ context.Context, email, _ string, itemName string, deadline time.Time) error {
	logger.Info("overdue reminder (not sent, email disabled)",
		"to", email, "item", itemName, "deadline", deadline)
	return nil
}
