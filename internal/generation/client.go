// Package generation builds prompts and calls an OpenAI-compatible
// chat-completions endpoint to produce wedding site copy. The provider is
// treated as an untrusted black box: its output is parsed and re-validated
// before anything is persisted.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wedloft/site-service/internal/entities"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Config configures the chat-completions endpoint and HTTP behavior. Set a
// timeout on HTTPClient: the provider call is the slowest operation in the
// system and must be bounded.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

type Client struct {
	cfg      Config
	validate *validator.Validate
}

func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{cfg: cfg, validate: validator.New()}
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// contentPayload re-validates the provider output: all ten fields must be
// present and non-empty before the result is accepted.
type contentPayload struct {
	WelcomeMessage string `json:"welcomeMessage" validate:"required"`
	OurStory       string `json:"ourStory" validate:"required"`
	VenueDetails   string `json:"venueDetails" validate:"required"`
	RSVPMessage    string `json:"rsvpMessage" validate:"required"`
	SEOTitle       string `json:"seoTitle" validate:"required"`
	SEODescription string `json:"seoDescription" validate:"required"`
	SchemaMarkup   string `json:"schemaMarkup" validate:"required"`
	AgendaIntro    string `json:"agendaIntro" validate:"required"`
	DetailsIntro   string `json:"detailsIntro" validate:"required"`
	ClosingMessage string `json:"closingMessage" validate:"required"`
}

// Generate performs a single chat-completions call and parses the structured
// response. There is no in-process retry: the caller decides whether to
// re-invoke.
func (c *Client) Generate(ctx context.Context, prompt string) (entities.GeneratedContent, error) {
	body, err := json.Marshal(chatRequest{
		Model:          c.cfg.Model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return entities.GeneratedContent{}, fmt.Errorf("marshal generation request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return entities.GeneratedContent{}, fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Credential material goes only into the Authorization header, it is
	// never echoed in errors.
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return entities.GeneratedContent{}, fmt.Errorf("generation request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return entities.GeneratedContent{}, fmt.Errorf("read generation error body: %w", err)
		}
		return entities.GeneratedContent{}, fmt.Errorf("generation request status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
	}

	var payload chatResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return entities.GeneratedContent{}, fmt.Errorf("decode generation response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return entities.GeneratedContent{}, fmt.Errorf("generation response has no choices")
	}

	var content contentPayload
	if err := json.Unmarshal([]byte(payload.Choices[0].Message.Content), &content); err != nil {
		return entities.GeneratedContent{}, fmt.Errorf("parse generated content: %w", err)
	}
	if err := c.validate.Struct(content); err != nil {
		return entities.GeneratedContent{}, fmt.Errorf("generated content incomplete: %w", err)
	}

	return entities.GeneratedContent{
		WelcomeMessage: content.WelcomeMessage,
		OurStory:       content.OurStory,
		VenueDetails:   content.VenueDetails,
		RSVPMessage:    content.RSVPMessage,
		SEOTitle:       content.SEOTitle,
		SEODescription: content.SEODescription,
		SchemaMarkup:   content.SchemaMarkup,
		AgendaIntro:    content.AgendaIntro,
		DetailsIntro:   content.DetailsIntro,
		ClosingMessage: content.ClosingMessage,
	}, nil
}
