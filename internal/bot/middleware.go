package bot

import (
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// recoverMiddleware handles panics in message handlers
func (b *Bot) recoverMiddleware(handler func()) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("Panic recovered in handler")
		}
	}()

	handler()
}

// sendErrorMessage sends an error notice to the user
func (b *Bot) sendErrorMessage(chatID int64, errorMsg string) {
	msg := tgbotapi.NewMessage(chatID, errorMsg)
	_, err := b.client.Send(msg)
	if err != nil {
		b.logger.Error().
			Err(err).
			Int64("chat_id", chatID).
			Msg("Failed to send error message")
	}
}

// sendMessage sends a Markdown message to the chat
func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	_, err := b.client.Send(msg)
	if err != nil {
		b.logger.Error().
			Err(err).
			Int64("chat_id", chatID).
			Msg("Failed to send message")
		return err
	}

	return nil
}
