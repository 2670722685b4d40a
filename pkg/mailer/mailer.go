package mailer

import (
	"context"
	"fmt"
	appConfig "riftwind/pkg/config"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Mailer delivers the user feedback emails through SES.
type Mailer struct {
	client      *sesv2.Client
	source      string
	destination string
}

// NewMailer builds the SES client from the mailer configuration.
// Returns an error when the addresses or credentials are missing.
func NewMailer(ctx context.Context) (*Mailer, error) {
	if appConfig.Mailer.Source == "" || appConfig.Mailer.Destination == "" {
		return nil, fmt.Errorf("mailer source and destination addresses are required")
	}
	if appConfig.Mailer.AccessKey == "" || appConfig.Mailer.AccessSecret == "" {
		return nil, fmt.Errorf("mailer credentials are required")
	}

	cfg := aws.Config{
		Region: appConfig.Mailer.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			appConfig.Mailer.AccessKey, appConfig.Mailer.AccessSecret, ""),
	}

	return &Mailer{
		client:      sesv2.NewFromConfig(cfg),
		source:      appConfig.Mailer.Source,
		destination: appConfig.Mailer.Destination,
	}, nil
}

// SendFeedback forwards one feedback submission.
func (m *Mailer) SendFeedback(ctx context.Context, email, feedback string) error {
	subject := fmt.Sprintf("Riftwind Feedback from %s", email)
	body := fmt.Sprintf("New feedback received from Riftwind:\n\nEmail: %s\nTimestamp: %s\n\nFeedback:\n%s\n",
		email, time.Now().UTC().Format(time.RFC3339), feedback)

	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.source),
		Destination: &types.Destination{
			ToAddresses: []string{m.destination},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send the feedback email: %v", err)
	}

	return nil
}
