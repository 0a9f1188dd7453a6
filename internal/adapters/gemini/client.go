package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
)

// DefaultModelName is the Gemini model used for all assistant features.
const DefaultModelName = "gemini-2.5-flash"

const chatSystemInstruction = "You are a helpful personal finance assistant."
const searchSystemInstruction = "You are a financial researcher."

// Client implements the assistant facade and the exchange-rate source on top
// of the Gemini API.
type Client struct {
	genaiClient *genai.Client
	model       string
}

var _ portssvc.AssistantSvcFacade = (*Client)(nil)
var _ portssvc.RateSource = (*Client)(nil)

// NewClient creates a Gemini-backed client. The API key comes from
// configuration; model defaults to DefaultModelName when empty.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModelName
	}
	return &Client{genaiClient: genaiClient, model: model}, nil
}

// Chat sends a free-form prompt and returns the model's reply.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemInstruction, genai.RoleUser),
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate chat response: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// Search answers a query grounded on web search and returns the sources the
// answer was grounded on.
func (c *Client) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(searchSystemInstruction, genai.RoleUser),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, genai.Text(query), config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate search response: %w", err)
	}

	return &dto.SearchResponse{
		Text:    resp.Text(),
		Sources: extractSources(resp),
	}, nil
}

// AnalyzeReceipt extracts structured transaction details from a
// base64-encoded JPEG using a constrained JSON response schema.
func (c *Client) AnalyzeReceipt(ctx context.Context, imageBase64 string) (*dto.ReceiptDetails, error) {
	imageBytes, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode receipt image: %w", err)
	}

	prompt := "Extract details from this receipt. Return total amount, category (from: " +
		joinCategories(domain.ExpenseCategories) +
		"), date in ISO format, and merchant name as the description. Return as JSON."

	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: imageBytes}},
				{Text: prompt},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount":      {Type: genai.TypeNumber},
				"category":    {Type: genai.TypeString},
				"description": {Type: genai.TypeString},
				"date":        {Type: genai.TypeString},
			},
			Required: []string{"amount", "category", "description"},
		},
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze receipt: %w", err)
	}

	raw := cleanModelJSON(resp.Text())
	if raw == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var details dto.ReceiptDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil, fmt.Errorf("failed to parse receipt details: %w", err)
	}
	if !domain.ValidCategory(domain.Expense, details.Category) {
		details.Category = domain.DefaultCategory(domain.Expense)
	}
	return &details, nil
}

func extractSources(resp *genai.GenerateContentResponse) []dto.Source {
	sources := make([]dto.Source, 0)
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return sources
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		sources = append(sources, dto.Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return sources
}

func joinCategories(categories []string) string {
	out := ""
	for i, c := range categories {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
