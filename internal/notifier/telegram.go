package notifier

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coinwatch/predictor/models"
)

// Telegram broadcasts prediction summaries to a set of chats.
type Telegram struct {
	bot     *tgbotapi.BotAPI
	chatIDs []int64
	logger  zerolog.Logger
}

// NewTelegram builds a notifier from a bot token and target chat ids.
func NewTelegram(token string, chatIDs []int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &Telegram{
		bot:     bot,
		chatIDs: chatIDs,
		logger:  log.With().Str("component", "notifier").Logger(),
	}, nil
}

// SendPredictions formats the batch into one message per chat. A failed
// chat is logged and skipped so one bad chat id cannot block the rest.
func (t *Telegram) SendPredictions(predictions []*models.Prediction) {
	if len(predictions) == 0 {
		return
	}
	text := FormatBatch(predictions)
	for _, chatID := range t.chatIDs {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := t.bot.Send(msg); err != nil {
			t.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send predictions")
			continue
		}
	}
	t.logger.Info().Int("predictions", len(predictions)).Int("chats", len(t.chatIDs)).Msg("broadcast sent")
}

// FormatBatch renders the batch as a Markdown digest.
func FormatBatch(predictions []*models.Prediction) string {
	var b strings.Builder
	b.WriteString("*Market signals*\n\n")
	for _, p := range predictions {
		b.WriteString(FormatPrediction(p))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPrediction renders one prediction as a compact Markdown block.
func FormatPrediction(p *models.Prediction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s *%s* (%s) — %d%%\n",
		directionEmoji(p.Direction), strings.ToUpper(p.Asset.Symbol), p.Direction, p.Confidence)
	if p.Direction != models.DirectionNeutral {
		fmt.Fprintf(&b, "Entry %s | Target %s | Stop %s | %dx | %s risk | %s\n",
			money(p.Asset.CurrentPrice), money(p.TargetPrice), money(p.StopLoss),
			p.Leverage, p.RiskLevel, p.Timeframe)
	}
	for _, r := range p.Reasons {
		if r.Impact == models.ImpactNeutral {
			continue
		}
		fmt.Fprintf(&b, "  • %s\n", r.Text)
	}
	return b.String()
}

func directionEmoji(direction string) string {
	switch direction {
	case models.DirectionLong:
		return "🟢"
	case models.DirectionShort:
		return "🔴"
	default:
		return "⚪"
	}
}

func money(v float64) string {
	switch {
	case v >= 1:
		return fmt.Sprintf("$%.2f", v)
	case v >= 0.01:
		return fmt.Sprintf("$%.4f", v)
	default:
		return fmt.Sprintf("$%.8f", v)
	}
}
