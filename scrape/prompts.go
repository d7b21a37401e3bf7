package scrape

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// codeFenceRE matches a fenced block, optionally tagged as json, anywhere
// in the response.
var codeFenceRE = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// StripCodeFence removes markdown code-fence wrapping from an extraction
// response. Responses without a fence are returned trimmed.
func StripCodeFence(text string) string {
	if m := codeFenceRE.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

// BuildLinkPrompt builds the prompt asking the extraction service for game
// detail URLs and a next-page selector from a cleaned category page.
// remaining bounds how many URLs the service should return; currentURL is
// used to absolutize relative links.
func BuildLinkPrompt(cleanHTML string, remaining int, currentURL string) string {
	var sb strings.Builder
	sb.WriteString("You are analyzing the HTML of a game store's category page. Extract two things: direct links to individual game detail pages and a way to navigate to the next page of results.\n\n")
	sb.WriteString("Instructions:\n")
	fmt.Fprintf(&sb, "1. Identify and return a list of game detail URLs. A game URL leads to a page dedicated to a single game. Do not include links to news, DLCs without a base game, or developer pages. Return up to %d URLs.\n", remaining)
	fmt.Fprintf(&sb, "   - IMPORTANT: If an extracted URL is a relative path (e.g., starts with '/'), you MUST combine it with the base URL of the current page to form an absolute URL. The current page URL is: %s\n", currentURL)
	sb.WriteString("2. Find the pagination element to go to the NEXT page. Provide a unique and reliable CSS selector for it.\n")
	sb.WriteString("   - Prioritize elements with text like 'Next', '>', '>>', or aria-label=\"Next page\".\n")
	sb.WriteString("   - If there is no 'Next' button but there are numbered pages, provide the selector for the next available page number.\n")
	sb.WriteString("   - If pagination is an infinite scroll or a 'Load More' button, provide the selector for that button.\n")
	sb.WriteString("   - If you cannot find a way to get to the next page, return null.\n\n")
	sb.WriteString("Return a single, valid JSON object with the following keys:\n")
	sb.WriteString("- \"game_urls\": (list of strings) the game URLs found.\n")
	sb.WriteString("- \"next_page_selector\": (string or null) the CSS selector for the next page/load more element, or null if not found.\n\n")
	sb.WriteString("Cleaned HTML:\n")
	sb.WriteString(cleanHTML)
	return sb.String()
}

// BuildExtractPrompt builds the prompt asking the extraction service to
// turn a cleaned game detail page into the fixed listing schema. now is
// injected so relative discount end-dates can be resolved to absolute
// timestamps.
func BuildExtractPrompt(cleanHTML, gameURL string, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze the HTML from a game detail page (%s) and extract the information into a single, valid JSON object.\n", gameURL)
	sb.WriteString("If a piece of information is not found or applicable, use null for its value.\n")
	sb.WriteString("Do not omit any fields. Always include all fields, even if the value is null.\n\n")
	fmt.Fprintf(&sb, "Current Date: %s\n\n", now.UTC().Format(time.RFC3339))
	sb.WriteString("HTML Content:\n")
	sb.WriteString(cleanHTML)
	sb.WriteString("\n\nJSON Output Structure and Instructions:\n")
	sb.WriteString(`{
  "name": "(string) The full name of the game as displayed on the platform. Required.",
  "description": "(string or null) A detailed description of the game, usually a few paragraphs long. Extract the main descriptive text.",
  "price": "(float) The current price. For free games, use 0.0. If the price is unknown or cannot be determined, use -1.0. This field is required and must never be null.",
  "currency": "(string or null) The currency code, such as 'USD', 'EUR', 'UAH'. Extract the currency as shown on the page. If not found, use null. Do not guess or convert.",
  "price_in_usd": "(float) The price converted to USD. If 'currency' is not USD, convert 'price' to USD using an up-to-date exchange rate. If 'currency' is already USD, use the same value as 'price'. If 'price' is -1.0, this field must also be -1.0. If conversion is impossible, use -1.0. This field is required and must never be null.",
  "availability_status": "(string) Must be one of: 'available', 'out_of_stock', 'coming_soon', 'preorder', 'free', 'unavailable', 'early_access', 'beta', 'region_locked', 'unknown'. Required.",
  "url_on_platform": "(string) The full URL of the page being analyzed. Use this value: ` + gameURL + `",
  "rating": "(float or null) The game's average score. Normalize all ratings to a 5-point scale. Example: '9/10' or '90%' becomes 4.5.",
  "reviews_count": "(integer or null) Total number of user reviews. Convert text like '1.2K' to 1200.",
  "special_content_json": "(JSON object or null) Info about DLCs, bundles. If nothing found, use null.",
  "discount_info_json": "(JSON object or null) Info about discounts, e.g. {\"original_price\": 29.99, \"discounted_price\": 26.99, \"sale_end_date\": \"2025-06-13T23:59:59Z\"}. Use null if not on sale.",
  "metadata_json": "(JSON object or null) Other game metadata like genres, tags, developer, publisher, release date, system requirements. If metadata is not available, use null."
}`)
	sb.WriteString("\n\nImportant Notes:\n")
	sb.WriteString("- Always return a complete JSON object with all fields present.\n")
	sb.WriteString("- Strictly follow the requested data types and formats.\n")
	sb.WriteString("- If the sale end date is given as a relative phrase (e.g., \"ends in 14 days\"), you must compute and return the exact absolute date in ISO 8601 format using the current date provided. Never leave sale_end_date null if any time reference is available.\n")
	sb.WriteString("- For metadata_json, include as many details as possible; the field itself must always be present.\n\n")
	sb.WriteString("JSON Response:\n")
	return sb.String()
}
