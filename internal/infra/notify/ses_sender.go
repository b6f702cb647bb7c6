// Package notify provides the payment reminder delivery channel.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pkg/errors"

	"sokoo/config"
	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/service"
)

// sesSender delivers payment reminders as email through Amazon SES.
type sesSender struct {
	client *ses.Client
	from   string
	logger *slog.Logger
}

// NewSESSender is the constructor for sesSender.
func NewSESSender(ctx context.Context, cfg *config.ReminderConfig, logger *slog.Logger) (service.ReminderSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}

	return &sesSender{
		client: ses.NewFromConfig(awsCfg),
		from:   cfg.From,
		logger: logger,
	}, nil
}

// Channel names the delivery channel.
func (s *sesSender) Channel() string {
	return "email"
}

// Send dispatches a reminder about the given payment to the shop's owner.
func (s *sesSender) Send(ctx context.Context, shop *entity.Shop, payment *entity.Payment, ownerEmail string) error {
	subject := fmt.Sprintf("Payment reminder for %s", shop.Name)
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"This is a reminder that the subscription payment of %d %s for %s is due on %s.\n"+
			"Please settle it to keep your shop listed in the directory.\n\n"+
			"Thank you,\nThe Sokoo Team\n",
		shop.OwnerName, payment.Amount, payment.Currency, shop.Name,
		payment.DueDate.Format("2 January 2006"),
	)

	input := &ses.SendEmailInput{
		Source:      &s.from,
		Destination: &types.Destination{ToAddresses: []string{ownerEmail}},
		Message: &types.Message{
			Subject: &types.Content{Data: &subject},
			Body:    &types.Body{Text: &types.Content{Data: &body}},
		},
	}

	output, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return errors.Wrap(err, "failed to send reminder email")
	}

	s.logger.Info("Reminder email sent", "shopID", shop.ID, "messageID", *output.MessageId)

	return nil
}
