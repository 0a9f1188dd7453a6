package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
)

const ratesPrompt = "Search for current exchange rates for 1 USD to TRY, 1 EUR to TRY, " +
	"1 GBP to TRY, and 1 CAD to TRY. Provide the latest rates clearly in text."

// fallbackRates fill in currencies the model's answer did not mention.
var fallbackRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromFloat(34.2),
	"EUR": decimal.NewFromFloat(37.1),
	"GBP": decimal.NewFromFloat(44.5),
	"CAD": decimal.NewFromFloat(25.1),
}

// FetchExchangeRates asks the model for current TRY rates, grounded on web
// search, and extracts them from the free-text answer.
func (c *Client) FetchExchangeRates(ctx context.Context) (domain.RateTable, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, genai.Text(ratesPrompt), config)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}

	return parseRateText(resp.Text()), nil
}

// parseRateText extracts per-currency rates from a free-text answer. The
// model is not forced into JSON here because search grounding and structured
// output cannot be combined, so extraction is a per-currency regex over the
// text with a fixed fallback for anything it misses.
func parseRateText(text string) domain.RateTable {
	table := domain.RateTable{domain.BaseCurrency: decimal.NewFromInt(1)}
	for _, code := range domain.SupportedCurrencies {
		if code == domain.BaseCurrency {
			continue
		}
		re := regexp.MustCompile(`(?i)` + code + `[:\s-]+(\d+(\.\d+)?)`)
		if match := re.FindStringSubmatch(text); match != nil {
			if rate, err := decimal.NewFromString(match[1]); err == nil && rate.IsPositive() {
				table[code] = rate
				continue
			}
		}
		table[code] = fallbackRates[code]
	}
	return table
}

// cleanModelJSON strips Markdown code fences and surrounding prose from a
// model response that should have been raw JSON.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
