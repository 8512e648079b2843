package bot

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topprix-dz/internal/agent"
	"github.com/topprix-dz/internal/models"
)

type stubGateway struct{}

func (s *stubGateway) Configured() bool {
	return false
}

func (s *stubGateway) Complete(_ context.Context, _ models.CompletionRequest) (string, error) {
	return "", agent.NewError(agent.KindUnconfigured, "stub")
}

// fakeTelegram records sends and requests; sendErrs are consumed one per
// Send call (nil means success)
type fakeTelegram struct {
	sent     []tgbotapi.MessageConfig
	requests []tgbotapi.Chattable
	sendErrs []error
	nextID   int
}

func (f *fakeTelegram) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, errors.New("unexpected chattable")
	}

	var err error
	if len(f.sendErrs) > 0 {
		err = f.sendErrs[0]
		f.sendErrs = f.sendErrs[1:]
	}
	if err != nil {
		return tgbotapi.Message{}, err
	}

	f.sent = append(f.sent, msg)
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeTelegram) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func newTestBot(client telegramClient) *Bot {
	return &Bot{
		client:  client,
		builder: agent.NewBuilder(&stubGateway{}, zerolog.Nop()),
		config:  &models.Config{},
		logger:  zerolog.Nop(),
	}
}

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 100,
		Text:      text,
		Chat:      &tgbotapi.Chat{ID: 42},
	}
}

func commandMessage(text string) *tgbotapi.Message {
	msg := textMessage(text)
	msg.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(text)},
	}
	return msg
}

func TestChatFlow(t *testing.T) {
	fake := &fakeTelegram{}
	b := newTestBot(fake)

	b.handleMessage(context.Background(), textMessage("لابتوب"))

	require.Len(t, fake.sent, 2)

	placeholder := fake.sent[0]
	assert.Contains(t, placeholder.Text, "جاري البحث")
	assert.Contains(t, placeholder.Text, "لابتوب")
	assert.Equal(t, int64(42), placeholder.ChatID)

	reply := fake.sent[1]
	assert.Contains(t, reply.Text, "لابتوب")
	assert.Contains(t, reply.Text, "أفضل عرض")
	assert.Equal(t, 100, reply.ReplyToMessageID)

	// Placeholder deletion attempted exactly once, targeting the
	// recorded placeholder id
	require.Len(t, fake.requests, 1)
	del, ok := fake.requests[0].(tgbotapi.DeleteMessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), del.ChatID)
	assert.Equal(t, 1, del.MessageID)
}

func TestChatFlowReplyFailure(t *testing.T) {
	fake := &fakeTelegram{sendErrs: []error{nil, errors.New("telegram down")}}
	b := newTestBot(fake)

	b.handleMessage(context.Background(), textMessage("قهوة"))

	// Placeholder then the generic failure notice
	require.Len(t, fake.sent, 2)
	assert.Contains(t, fake.sent[0].Text, "جاري البحث")
	assert.Contains(t, fake.sent[1].Text, "حدث خطأ في البحث")

	// Deletion is still attempted exactly once
	require.Len(t, fake.requests, 1)
}

func TestChatFlowPlaceholderFailure(t *testing.T) {
	fake := &fakeTelegram{sendErrs: []error{errors.New("telegram down")}}
	b := newTestBot(fake)

	b.handleMessage(context.Background(), textMessage("هاتف"))

	// The reply is still sent; with no placeholder recorded there is
	// nothing to delete
	require.Len(t, fake.sent, 1)
	assert.Contains(t, fake.sent[0].Text, "هاتف")
	assert.Empty(t, fake.requests)
}

func TestStartCommand(t *testing.T) {
	fake := &fakeTelegram{}
	b := newTestBot(fake)

	b.handleMessage(context.Background(), commandMessage("/start"))

	require.Len(t, fake.sent, 1)
	assert.Contains(t, fake.sent[0].Text, "مرحباً بك في TopPrix-DZ")
	assert.Empty(t, fake.requests)
}

func TestHelpCommand(t *testing.T) {
	fake := &fakeTelegram{}
	b := newTestBot(fake)

	b.handleMessage(context.Background(), commandMessage("/help"))

	require.Len(t, fake.sent, 1)
	assert.Contains(t, fake.sent[0].Text, "اسم المنتج")
}

func TestUnknownCommandIgnored(t *testing.T) {
	fake := &fakeTelegram{}
	b := newTestBot(fake)

	b.handleMessage(context.Background(), commandMessage("/unknown"))

	assert.Empty(t, fake.sent)
	assert.Empty(t, fake.requests)
}

func TestEmptyTextIgnored(t *testing.T) {
	fake := &fakeTelegram{}
	b := newTestBot(fake)

	b.handleMessage(context.Background(), textMessage("   "))

	assert.Empty(t, fake.sent)
	assert.Empty(t, fake.requests)
}
