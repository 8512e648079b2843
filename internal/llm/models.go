package llm

// DefaultBaseURL is the Groq OpenAI-compatible API root
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// DefaultModel is the completion model used for market queries
const DefaultModel = "llama-3.1-8b-instant"

// chatMessage is one entry of the chat-completion request
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the wire format of POST /chat/completions
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// chatResponse is the subset of the provider response we consume
type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// apiError is the provider error envelope on non-2xx responses
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
