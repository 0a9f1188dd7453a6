package dto

import (
	"github.com/shopspring/decimal"
)

// ChatRequest is a free-form prompt for the finance assistant.
type ChatRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Text string `json:"text"`
}

// SearchRequest is a grounded-search query.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchResponse carries the answer plus the web sources it was grounded on.
type SearchResponse struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// Source identifies one grounding reference.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// AnalyzeReceiptRequest carries a base64-encoded JPEG of a receipt.
type AnalyzeReceiptRequest struct {
	Image string `json:"image" binding:"required"`
}

// ReceiptDetails is the structured extraction from a receipt image. Category
// is one of the expense categories; Date is an ISO date string and may be
// empty when the receipt does not show one.
type ReceiptDetails struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date,omitempty"`
}
