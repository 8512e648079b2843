package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/topprix-dz/internal/models"
)

// The listing constants below are presentation placeholders standing in
// for the real price sources; their exact values carry no business rule.

// MockListings returns the fixed three-listing search result, titled with
// the extracted product when present and the raw query otherwise
func MockListings(product, query string) []models.MockListing {
	name := product
	if name == "" {
		name = query
	}

	return []models.MockListing{
		{
			Title:    name + " - سوق واد كنيس",
			Price:    "2500 دج",
			Source:   "OuedKniss",
			Location: "الجزائر العاصمة",
			Rating:   "4.2/5",
		},
		{
			Title:    name + " - متجر إلكتروني",
			Price:    "2700 دج",
			Source:   "Jumia",
			Location: "عبر الإنترنت",
			Rating:   "4.5/5",
		},
		{
			Title:    name + " - سوق محلي",
			Price:    "2300 دج",
			Source:   "السوق المحلي",
			Location: "باب الواد",
			Rating:   "4.0/5",
		},
	}
}

// chatOffer is one static marketplace entry of the chat reply
type chatOffer struct {
	store  string
	market string
	price  int
	stars  string
}

var chatOffers = []chatOffer{
	{store: "متجر التقنية", market: "تيك توك", price: 1500, stars: "⭐⭐⭐⭐⭐"},
	{store: "سوق الجملة", market: "تيك توك", price: 1600, stars: "⭐⭐⭐⭐"},
	{store: "بائع معتمد", market: "فيسبوك", price: 1450, stars: "⭐⭐⭐⭐⭐"},
}

// ChatReply renders the fixed-format Markdown listing sent to Telegram:
// the marketplace entries grouped by market, the computed best-offer line
// and a timestamp.
func (b *Builder) ChatReply(query string, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📦 *نتائج البحث عن \"%s\"*\n", query)

	var lastMarket string
	for _, offer := range chatOffers {
		if offer.market != lastMarket {
			fmt.Fprintf(&sb, "\n🏪 *من %s:*\n", offer.market)
			lastMarket = offer.market
		}
		fmt.Fprintf(&sb, "🛒 %s - %d دج %s\n", offer.store, offer.price, offer.stars)
	}

	fmt.Fprintf(&sb, "\n💎 *أفضل عرض:* %d دج\n", bestOffer(chatOffers))
	sb.WriteString("📞 للاستفسار: 0550xxxxxx\n")
	fmt.Fprintf(&sb, "\n🕒 %s", now.Format("2006-01-02 15:04"))

	return sb.String()
}

// bestOffer returns the minimum price among the offers
func bestOffer(offers []chatOffer) int {
	best := offers[0].price
	for _, offer := range offers[1:] {
		if offer.price < best {
			best = offer.price
		}
	}
	return best
}
