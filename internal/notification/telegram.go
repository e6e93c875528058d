package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking activity to the organizers' chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, organizer alerts disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, title string) {
	text := fmt.Sprintf(
		"New booking: %s\nTarget: %s (%s)\nChild: %s, %s\nLocation: %s\nCode: %s",
		b.ID, title, b.Target.Kind, b.ChildName, b.AgeRange, b.EventLocation, b.ConfirmationCode,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingPaid(ctx context.Context, b *domain.Booking) {
	ref := "-"
	if b.PaymentReference != nil {
		ref = *b.PaymentReference
	}
	text := fmt.Sprintf(
		"Booking paid: %s\nChild: %s\nCode: %s\nPayment reference: %s",
		b.ID, b.ChildName, b.ConfirmationCode, ref,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
