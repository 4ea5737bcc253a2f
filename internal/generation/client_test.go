package generation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wedloft/site-service/internal/generation"
)

func validContentJSON() string {
	return `{
		"welcomeMessage": "The Beginning of Forever",
		"ourStory": "Two paragraphs.",
		"venueDetails": "A castle.",
		"rsvpMessage": "Reply soon.",
		"seoTitle": "Emma & Lucas",
		"seoDescription": "Join us.",
		"schemaMarkup": "{\"@type\":\"Event\"}",
		"agendaIntro": "The plan.",
		"detailsIntro": "Good to know.",
		"closingMessage": "Thank you."
	}`
}

func chatCompletion(content string) string {
	payload := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func TestClient_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotReq map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(chatCompletion(validContentJSON())))
		}))
		defer srv.Close()

		client := generation.NewClient(generation.Config{
			BaseURL: srv.URL,
			APIKey:  "test-key",
			Model:   "gpt-4o-mini",
		})

		content, err := client.Generate(context.Background(), "write me a wedding site")
		require.NoError(t, err)

		assert.Equal(t, "/chat/completions", gotPath)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "gpt-4o-mini", gotReq["model"])
		assert.Equal(t, map[string]any{"type": "json_object"}, gotReq["response_format"])

		assert.Equal(t, "The Beginning of Forever", content.WelcomeMessage)
		assert.Equal(t, "Thank you.", content.ClosingMessage)
		assert.JSONEq(t, `{"@type":"Event"}`, content.SchemaMarkup)
	})

	t.Run("provider error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := generation.NewClient(generation.Config{BaseURL: srv.URL, Model: "gpt-4o-mini"})

		_, err := client.Generate(context.Background(), "prompt")
		require.Error(t, err)
		assert.ErrorContains(t, err, "429")
		assert.ErrorContains(t, err, "rate limited")
	})

	t.Run("no choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		client := generation.NewClient(generation.Config{BaseURL: srv.URL, Model: "gpt-4o-mini"})

		_, err := client.Generate(context.Background(), "prompt")
		assert.ErrorContains(t, err, "no choices")
	})

	t.Run("content is not json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(chatCompletion("Sure! Here is your content:")))
		}))
		defer srv.Close()

		client := generation.NewClient(generation.Config{BaseURL: srv.URL, Model: "gpt-4o-mini"})

		_, err := client.Generate(context.Background(), "prompt")
		assert.ErrorContains(t, err, "parse generated content")
	})

	t.Run("content missing fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(chatCompletion(`{"welcomeMessage":"only this"}`)))
		}))
		defer srv.Close()

		client := generation.NewClient(generation.Config{BaseURL: srv.URL, Model: "gpt-4o-mini"})

		_, err := client.Generate(context.Background(), "prompt")
		assert.ErrorContains(t, err, "incomplete")
	})

	t.Run("context cancellation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		client := generation.NewClient(generation.Config{BaseURL: srv.URL, Model: "gpt-4o-mini"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Generate(ctx, "prompt")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
