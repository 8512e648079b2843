// Package intent classifies free-text product queries by keyword matching.
// Detection is pure and total: unparseable input yields IntentUnknown,
// never an error.
package intent

import (
	"strings"

	"github.com/topprix-dz/internal/models"
)

// comparisonKeywords mark requests to compare prices across stores
var comparisonKeywords = []string{
	"قارن", "مقارنة", "أرخص", "ارخص",
	"أفضل سعر", "افضل سعر", "أحسن سعر", "احسن سعر",
	"compare", "comparer", "moins cher",
}

// priceKeywords mark plain price lookups
var priceKeywords = []string{
	"سعر", "أسعار", "اسعار", "ثمن", "أثمنة",
	"بكم", "شحال", "بشحال", "قداش",
	"prix", "price", "combien",
}

// greetingKeywords mark salutations with no product attached
var greetingKeywords = []string{
	"سلام", "السلام عليكم", "مرحبا", "مرحباً", "اهلا", "أهلا",
	"صباح الخير", "مساء الخير",
	"salut", "bonjour", "bonsoir", "hello", "hi",
}

// fillerWords are stripped before extracting the product name.
// Keyword words are stripped too, so "سعر لابتوب" extracts "لابتوب".
var fillerWords = []string{
	"اعطني", "أعطني", "اريد", "أريد", "ابحث", "أبحث",
	"عن", "في", "لي", "ما", "هو", "هي", "كم",
	"الجزائر", "السوق", "من", "فضلك",
	"le", "la", "de", "du", "un", "une",
}

// Detect returns the coarse intent of the given text.
// Priority: comparison keywords win over price keywords, price keywords
// over greetings, and any other non-empty text is treated as a search.
func Detect(text string) models.Intent {
	t := normalize(text)
	if t == "" {
		return models.IntentUnknown
	}
	if containsAny(t, comparisonKeywords) {
		return models.IntentPriceComparison
	}
	if containsAny(t, priceKeywords) {
		return models.IntentSearch
	}
	if containsAny(t, greetingKeywords) {
		return models.IntentGreeting
	}
	return models.IntentSearch
}

// ExtractProduct returns the best-guess product substring of the text,
// or "" when nothing product-like remains after stripping keywords.
// It never fails.
func ExtractProduct(text string) string {
	t := normalize(text)
	if t == "" {
		return ""
	}

	stop := make(map[string]bool)
	for _, lists := range [][]string{comparisonKeywords, priceKeywords, greetingKeywords, fillerWords} {
		for _, w := range lists {
			for _, part := range strings.Fields(w) {
				stop[part] = true
			}
		}
	}

	var kept []string
	for _, word := range strings.Fields(t) {
		if !stop[word] {
			kept = append(kept, word)
		}
	}

	return strings.Join(kept, " ")
}

// BuildContext runs detection and extraction over the text and packs
// the result into the context record embedded in AI responses
func BuildContext(text string) models.IntentResult {
	detected := Detect(text)
	return models.IntentResult{
		Intent:            detected,
		Product:           ExtractProduct(text),
		IsPriceComparison: detected == models.IntentPriceComparison,
	}
}

// normalize lowercases the text and trims surrounding space and punctuation
func normalize(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	return strings.Trim(t, "؟?!.,:;")
}

// containsAny matches multiword keywords as substrings and single-word
// keywords against whole words only
func containsAny(text string, keywords []string) bool {
	words := strings.Fields(text)
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(text, kw) {
				return true
			}
			continue
		}
		for _, word := range words {
			if word == kw {
				return true
			}
		}
	}
	return false
}
