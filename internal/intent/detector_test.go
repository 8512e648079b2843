package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/topprix-dz/internal/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Intent
	}{
		{"empty", "", models.IntentUnknown},
		{"whitespace", "   ", models.IntentUnknown},
		{"punctuation only", "؟؟؟", models.IntentUnknown},
		{"arabic greeting", "سلام", models.IntentGreeting},
		{"french greeting", "bonjour", models.IntentGreeting},
		{"price lookup", "سعر هاتف", models.IntentSearch},
		{"price lookup dialect", "شحال قهوة", models.IntentSearch},
		{"comparison", "قارن أسعار لابتوب", models.IntentPriceComparison},
		{"cheapest", "أرخص حليب", models.IntentPriceComparison},
		{"bare product", "لابتوب", models.IntentSearch},
		{"comparison beats price", "مقارنة سعر هاتف", models.IntentPriceComparison},
		{"price beats greeting", "سلام سعر قهوة", models.IntentSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestExtractProduct(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"greeting only", "مرحبا", ""},
		{"keyword stripped", "سعر هاتف", "هاتف"},
		{"comparison stripped", "قارن أسعار لابتوب", "لابتوب"},
		{"filler stripped", "اعطني سعر قهوة في الجزائر", "قهوة"},
		{"bare product", "لابتوب", "لابتوب"},
		{"multiword product", "ساعة ذكية", "ساعة ذكية"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractProduct(tt.text))
		})
	}
}

func TestBuildContext(t *testing.T) {
	got := BuildContext("قارن سعر لابتوب")

	assert.Equal(t, models.IntentPriceComparison, got.Intent)
	assert.Equal(t, "لابتوب", got.Product)
	assert.True(t, got.IsPriceComparison)
}

func TestBuildContextNeverFails(t *testing.T) {
	for _, text := range []string{"", "!!!", "12345", "\n\t", "🤖"} {
		got := BuildContext(text)
		assert.NotEmpty(t, got.Intent, "text %q", text)
	}
}
