package services

import (
	"context"

	"github.com/finanza-app/finanza-backend/internal/dto"
)

// AssistantSvcFacade exposes the AI features. Every call is a single attempt
// against the external model; failures surface immediately and are handled at
// the call site.
type AssistantSvcFacade interface {
	Chat(ctx context.Context, prompt string) (string, error)
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
	// AnalyzeReceipt extracts transaction details from a base64-encoded JPEG.
	AnalyzeReceipt(ctx context.Context, imageBase64 string) (*dto.ReceiptDetails, error)
}
