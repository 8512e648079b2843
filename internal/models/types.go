package models

// Intent is the coarse classification of a user query
type Intent string

const (
	// IntentGreeting means the text is a salutation, not a product query
	IntentGreeting Intent = "greeting"

	// IntentSearch means the user is looking for a product or its price
	IntentSearch Intent = "search"

	// IntentPriceComparison means the user wants prices compared across stores
	IntentPriceComparison Intent = "price_comparison"

	// IntentUnknown is returned for text the detector cannot classify
	IntentUnknown Intent = "unknown"
)

// String returns string representation of Intent
func (i Intent) String() string {
	return string(i)
}

// IntentResult is the detector output attached to AI responses as context
type IntentResult struct {
	Intent            Intent `json:"intent"`
	Product           string `json:"product"`
	IsPriceComparison bool   `json:"isPriceComparison"`
}

// CompletionRequest represents a single chat-completion call to the LLM provider
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

// MockListing is a synthetic product/price record used as a stand-in
// for the real price sources until they are integrated
type MockListing struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Source   string `json:"source"`
	Location string `json:"location"`
	Rating   string `json:"rating"`
}

// AgentResponse is the payload returned by POST /agent
type AgentResponse struct {
	Success  bool         `json:"success"`
	Response string       `json:"response"`
	Context  IntentResult `json:"context"`
}

// SearchResponse is the payload returned by POST /api/search
type SearchResponse struct {
	Success      bool          `json:"success"`
	Query        string        `json:"query"`
	Intent       Intent        `json:"intent"`
	Product      string        `json:"product"`
	Results      []MockListing `json:"results"`
	TotalResults int           `json:"totalResults"`
	Message      string        `json:"message"`
}

// Config represents application configuration
type Config struct {
	// Telegram settings
	TelegramToken string

	// Groq API settings
	GroqAPIKey  string
	GroqModel   string
	GroqTimeout int

	// HTTP settings
	Port string

	// App settings
	LogLevel    string
	Environment string
}

// AIEnabled reports whether the LLM credential is present.
// Without it the /agent route falls back to a canned greeting.
func (c *Config) AIEnabled() bool {
	return c.GroqAPIKey != ""
}

// BotEnabled reports whether the Telegram transport can be started
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}
