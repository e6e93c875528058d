// Package mailer delivers HTML email with binary attachments over SMTP.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

type SMTPMailer struct {
	client *mail.Client
	from   string
	logger logger.Logger
}

// New builds the SMTP transport once; the client is shared by all requests.
func New(cfg Config, log logger.Logger) (*SMTPMailer, error) {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: from, logger: log}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, email domain.Email) error {
	msg, err := buildMessage(m.from, email)
	if err != nil {
		return err
	}

	if err = m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}

	m.logger.Debug("email sent",
		logger.String("to", email.To),
		logger.Int("attachments", len(email.Attachments)),
	)
	return nil
}

func buildMessage(from string, email domain.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("%w: sender: %w", domain.ErrDelivery, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("%w: recipient: %w", domain.ErrDelivery, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextHTML, email.HTML)

	for _, a := range email.Attachments {
		var opts []mail.FileOption
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		if err := msg.AttachReader(a.Filename, bytes.NewReader(a.Content), opts...); err != nil {
			return nil, fmt.Errorf("%w: attach %s: %w", domain.ErrDelivery, a.Filename, err)
		}
	}

	return msg, nil
}
