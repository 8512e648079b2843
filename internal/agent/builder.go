// Package agent holds the response builder: the mapping from an inbound
// query to exactly one outbound payload shape, including the degraded
// mode taken when the completion gateway has no credential.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/topprix-dz/internal/intent"
	"github.com/topprix-dz/internal/models"
)

// Gateway is the completion provider contract.
// Configured must be checked before Complete; an unconfigured gateway is
// never invoked.
type Gateway interface {
	Configured() bool
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
}

// Builder produces the response payload for each inbound query
type Builder struct {
	gateway Gateway
	logger  zerolog.Logger
}

// NewBuilder creates a response builder backed by the given gateway
func NewBuilder(gateway Gateway, logger zerolog.Logger) *Builder {
	return &Builder{
		gateway: gateway,
		logger:  logger.With().Str("component", "agent").Logger(),
	}
}

// offlineGreeting is returned from /agent when the AI feature is disabled
const offlineGreeting = "مرحباً! أنا بوت TopPrix-DZ. حالياً ميزة AI غير مفعلة. يمكنك استخدام /api/search للبحث عن المنتجات."

// emptyCompletionApology replaces a completion that came back without content
const emptyCompletionApology = "عذراً، لم أستطع معالجة طلبك."

// searchNotice is appended to every mock search payload
const searchNotice = "سيتم تحسين النتائج قريباً مع إضافة المزيد من المصادر"

// systemPromptTemplate embeds the detected intent, product and request
// type verbatim, followed by the fixed assistant instructions
const systemPromptTemplate = `أنت مساعد متخصص في الأسواق والأسعار الجزائرية.

معلومات السياق:
- نية المستخدم: %s
- المنتج المطلوب: %s
- نوع الطلب: %s

قم بمساعدة المستخدم في:
• البحث عن أسعار المنتجات في الجزائر
• مقارنة الأسعار بين المتاجر
• تقديم نصائح شراء ذكية
• الرد على استفسارات السوق الجزائري

كن دقيقاً ومفيداً في إجاباتك.`

// HandleAgent resolves a /agent message into its payload.
// Branch order: unconfigured gateway, missing field, then the AI call.
func (b *Builder) HandleAgent(ctx context.Context, message string) (*models.AgentResponse, error) {
	if !b.gateway.Configured() {
		return &models.AgentResponse{
			Success:  true,
			Response: offlineGreeting,
			Context: models.IntentResult{
				Intent:            models.IntentGreeting,
				Product:           "",
				IsPriceComparison: false,
			},
		}, nil
	}

	if strings.TrimSpace(message) == "" {
		return nil, NewError(KindMissingField, "message is required")
	}

	queryContext := intent.BuildContext(message)

	text, err := b.gateway.Complete(ctx, models.CompletionRequest{
		SystemPrompt: buildSystemPrompt(queryContext),
		UserPrompt:   message,
		Temperature:  0.7,
		MaxTokens:    1024,
	})
	if err != nil {
		// A contentless completion is a non-fatal fallback; everything
		// else surfaces to the transport as a server error.
		if KindOf(err) == KindEmptyResponse {
			text = emptyCompletionApology
		} else {
			b.logger.Error().
				Err(err).
				Str("intent", queryContext.Intent.String()).
				Msg("Completion gateway failed")
			return nil, err
		}
	}

	return &models.AgentResponse{
		Success:  true,
		Response: text,
		Context:  queryContext,
	}, nil
}

// HandleSearch resolves an /api/search query into the mock listing payload.
// The classifier runs for logging and context only; results are synthetic.
func (b *Builder) HandleSearch(ctx context.Context, query, userID string) (*models.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, NewError(KindMissingField, "query is required")
	}

	queryContext := intent.BuildContext(query)

	b.logger.Info().
		Str("query", query).
		Str("intent", queryContext.Intent.String()).
		Str("product", queryContext.Product).
		Str("user_id", userID).
		Msg("New product search")

	listings := MockListings(queryContext.Product, query)

	return &models.SearchResponse{
		Success:      true,
		Query:        query,
		Intent:       queryContext.Intent,
		Product:      queryContext.Product,
		Results:      listings,
		TotalResults: len(listings),
		Message:      searchNotice,
	}, nil
}

// buildSystemPrompt renders the assistant instructions around the
// detected context fields
func buildSystemPrompt(queryContext models.IntentResult) string {
	product := queryContext.Product
	if product == "" {
		product = "غير محدد"
	}
	requestType := "بحث عادي"
	if queryContext.IsPriceComparison {
		requestType = "مقارنة أسعار"
	}
	return fmt.Sprintf(systemPromptTemplate, queryContext.Intent.String(), product, requestType)
}
