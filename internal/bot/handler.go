package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// startMessage is the onboarding text for /start
const startMessage = `🛍️ *مرحباً بك في TopPrix-DZ* 🇩🇿

أنا بوت مساعد لأجد لك أفضل الأسعار في الجزائر من:
• 📱 تيك توك
• 👥 فيسبوك
• 📸 انستقرام

*كيفية الاستخدام:*
فقط اكتب اسم المنتج الذي تبحث عنه!

*أمثلة:*
قهوة, لابتوب, هاتف, حليب, دراعة...`

// helpMessage is the one-line hint for /help
const helpMessage = "💡 ببساطة اكتب اسم المنتج الذي تريد معرفة سعره!"

// searchFailureNotice replaces the listing when delivery fails
const searchFailureNotice = "❌ حدث خطأ في البحث، حاول مرة أخرى"

// handleUpdate processes incoming update
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	// Wrap in recover middleware
	b.recoverMiddleware(func() {
		// Handle message
		if update.Message != nil {
			b.handleMessage(ctx, update.Message)
		}
	})
}

// handleMessage processes incoming message
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	// Handle commands
	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	b.handleText(ctx, message)
}

// handleCommand processes bot commands
func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	command := message.Command()

	b.logger.Info().
		Str("command", command).
		Int64("chat_id", message.Chat.ID).
		Msg("Received command")

	switch command {
	case "start":
		b.sendMessage(message.Chat.ID, startMessage)
	case "help":
		b.sendMessage(message.Chat.ID, helpMessage)
	default:
		// Command-prefixed text is never treated as a product query
		b.logger.Debug().Str("command", command).Msg("Ignoring unknown command")
	}
}

// handleText processes a plain-text product query: send a transient
// placeholder, reply with the listing (or a failure notice), and always
// attempt to delete the placeholder exactly once afterwards.
func (b *Bot) handleText(ctx context.Context, message *tgbotapi.Message) {
	productName := strings.TrimSpace(message.Text)
	if productName == "" || strings.HasPrefix(productName, "/") {
		return
	}

	chatID := message.Chat.ID

	b.logger.Info().
		Int64("chat_id", chatID).
		Str("query", productName).
		Msg("Processing product query")

	placeholderID := b.sendPlaceholder(chatID, productName)
	defer b.deletePlaceholder(chatID, placeholderID)

	reply := tgbotapi.NewMessage(chatID, b.builder.ChatReply(productName, time.Now()))
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyToMessageID = message.MessageID

	if _, err := b.client.Send(reply); err != nil {
		b.logger.Error().
			Err(err).
			Int64("chat_id", chatID).
			Msg("Failed to send search results")
		b.sendErrorMessage(chatID, searchFailureNotice)
	}
}

// sendPlaceholder sends the transient "searching" message and returns its
// identifier, or 0 when sending failed
func (b *Bot) sendPlaceholder(chatID int64, productName string) int {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🔍 _جاري البحث عن \"%s\"..._", productName))
	msg.ParseMode = tgbotapi.ModeMarkdown

	sent, err := b.client.Send(msg)
	if err != nil {
		b.logger.Error().
			Err(err).
			Int64("chat_id", chatID).
			Msg("Failed to send placeholder message")
		return 0
	}
	return sent.MessageID
}

// deletePlaceholder removes the placeholder message. Deletion failures are
// logged and swallowed; they never surface to the user.
func (b *Bot) deletePlaceholder(chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	if _, err := b.client.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		b.logger.Warn().
			Err(err).
			Int64("chat_id", chatID).
			Int("message_id", messageID).
			Msg("Cannot delete placeholder message")
	}
}
