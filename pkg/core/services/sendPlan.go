package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/internal/config"
)

// EmailClient defines the operations needed to send emails
type EmailClient interface {
	SendEmail(to, subject, body string) error
}

// FailedEmail records a recipient the plan could not be sent to
type FailedEmail struct {
	Recipient string
	Err       error
}

// SendPlanResult lists who received the plan and who did not
type SendPlanResult struct {
	Subject string
	Sent    []string
	Failed  []FailedEmail
}

// SendPlan emails the month plan text to every configured recipient.
// A failed send does not stop the remaining recipients.
func SendPlan(
	ctx context.Context,
	database PlanReader,
	emailClient EmailClient,
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month int,
) (*SendPlanResult, error) {
	if cfg == nil || !cfg.CanEmail() {
		return nil, fmt.Errorf("%w: gmailUserID and planRecipients are required", ErrNotConfigured)
	}

	monthPlan, err := BuildMonthPlan(ctx, database, cfg, logger, year, month)
	if err != nil {
		return nil, err
	}

	result := &SendPlanResult{
		Subject: "Dienstplan " + monthPlan.Title(),
		Sent:    []string{},
		Failed:  []FailedEmail{},
	}
	body := monthPlan.Text()

	for _, recipient := range cfg.PlanRecipients {
		logger.Debug("Sending plan", zap.String("to", recipient))
		if err := emailClient.SendEmail(recipient, result.Subject, body); err != nil {
			logger.Warn("Failed to send plan", zap.String("to", recipient), zap.Error(err))
			result.Failed = append(result.Failed, FailedEmail{Recipient: recipient, Err: err})
			continue
		}
		result.Sent = append(result.Sent, recipient)
	}

	logger.Info("Plan emails sent",
		zap.String("month", monthPlan.Month.String()),
		zap.Int("sent", len(result.Sent)),
		zap.Int("failed", len(result.Failed)))

	return result, nil
}
