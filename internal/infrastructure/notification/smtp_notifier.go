// Package notification delivers finished estimates by email.
package notification

import (
	"context"
	"fmt"
	"time"

	"clearview_estimator/internal/config"
	"clearview_estimator/internal/domain/entities"
	"clearview_estimator/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const estimateSubjectFmt = "Your %s estimate: %s"

// sender is the part of *gomail.Client the notifier needs.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type SMTPNotifier struct {
	cfg    config.SMTP
	client sender
	logger *zap.Logger
}

var _ interfaces.IEstimateNotifier = (*SMTPNotifier)(nil)

// NewSMTPNotifier builds an SMTP notifier. In mock mode no client is created
// and every estimate is only logged.
func NewSMTPNotifier(cfg config.SMTP, logger *zap.Logger) (*SMTPNotifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &SMTPNotifier{cfg: cfg, logger: logger}
	if cfg.Mock {
		return n, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	n.client = client
	return n, nil
}

func (n *SMTPNotifier) SendEstimateEmail(ctx context.Context, q entities.Quote) error {
	content, err := renderEstimate(newEstimateEmailData(n.cfg.FromName, q))
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(estimateSubjectFmt, n.cfg.FromName, formatMoney(q.TotalPrice))

	if n.client == nil {
		n.logger.Info("[notification] mock estimate email",
			zap.String("quote_id", q.ID),
			zap.String("to", q.Customer.Email),
			zap.String("subject", subject))
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(n.cfg.FromName, n.cfg.FromAddress); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.AddToFormat(q.Customer.Name, q.Customer.Email); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, content)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = n.cfg.MaxElapsed

	err = backoff.RetryNotify(
		func() error {
			return n.client.DialAndSendWithContext(ctx, msg)
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			n.logger.Warn("[notification] estimate email failed, retrying",
				zap.String("quote_id", q.ID),
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	n.logger.Info("[notification] estimate email sent", zap.String("quote_id", q.ID))
	return nil
}
