package notification

import (
	"context"
	"fmt"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts booking activity to the admins' Telegram chat.
type TelegramNotifier struct {
	bot    telegramSender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		log.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: log}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, activity *domain.Activity, _ *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking*\n\n"+"Activity: %s\n"+"Date (UTC): %s\n"+"Booked by: %s (%s)",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, activity.Title),
		activity.Date.UTC().Format(dateLayout),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, user.Name),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, user.Email),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyActivityFull(ctx context.Context, activity *domain.Activity) {
	text := fmt.Sprintf(
		"*Activity fully booked*\n\n"+"Activity: %s\n"+"Date (UTC): %s\n"+"Capacity: %d",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, activity.Title),
		activity.Date.UTC().Format(dateLayout),
		activity.Capacity,
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
			logger.Any("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Any("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
