package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econgrads/internal/domain"
)

func TestClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sonar", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "Jane Smith")
		assert.Contains(t, req.Messages[1].Content, "MIT")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{
					"content": "```json\n{\"current_role\":\"Economist\",\"current_company\":\"OpenAI\",\"linkedin_url\":\"https://linkedin.com/in/jsmith\"}\n```",
				},
			}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sonar", "tok-123")
	p, err := c.Lookup(context.Background(), domain.CandidateRecord{
		Name: "Jane Smith", School: domain.MIT, InitialPlacement: "Amazon",
	})
	require.NoError(t, err)
	assert.Equal(t, "Economist", p.CurrentRole)
	assert.Equal(t, "OpenAI", p.CurrentCompany)
	assert.Equal(t, "https://linkedin.com/in/jsmith", p.LinkedInURL)
}

func TestClientLookupErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sonar", "tok-123")
	_, err := c.Lookup(context.Background(), domain.CandidateRecord{Name: "Jane Smith", School: domain.MIT})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
