package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"econgrads/internal/domain"
)

// Profile is what the lookup API reports about one candidate today.
type Profile struct {
	CurrentRole    string `json:"current_role"`
	CurrentCompany string `json:"current_company"`
	LinkedInURL    string `json:"linkedin_url"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const systemPrompt = "You are a research assistant. Search the web and extract " +
	"structured data about people. Return valid JSON only."

// Client queries a search-backed chat completions API (Perplexity-style)
// for current employment data.
type Client struct {
	http  *resty.Client
	model string
}

func NewClient(endpoint, model, token string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(endpoint, "/")).
			SetAuthToken(token).
			SetTimeout(60 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(2 * time.Second),
		model: model,
	}
}

// Lookup asks the API where the candidate works now. The model is
// instructed to answer with a bare JSON object; fenced responses are
// tolerated because models wrap JSON in markdown anyway.
func (c *Client) Lookup(ctx context.Context, rec domain.CandidateRecord) (Profile, error) {
	prompt := fmt.Sprintf(
		"Find the current position of this economics PhD graduate:\n\n"+
			"Name: %s\nPhD School: %s\nFirst job after PhD: %s\nResearch areas: %s\n\n"+
			"Search for their LinkedIn profile or employer page. Return a JSON object "+
			"with exactly these fields: current_role, current_company, linkedin_url. "+
			"Use an empty string for anything you cannot find. Return ONLY the JSON.",
		rec.Name, rec.School.DisplayName(), rec.InitialPlacement,
		strings.Join(rec.ResearchFields, ", "))

	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: prompt},
			},
			Temperature: 0.1,
			MaxTokens:   500,
		}).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return Profile{}, fmt.Errorf("lookup %q: %w", rec.Name, err)
	}
	if resp.IsError() {
		return Profile{}, fmt.Errorf("lookup %q: %s: %s", rec.Name, resp.Status(), resp.String())
	}
	if len(out.Choices) == 0 {
		return Profile{}, fmt.Errorf("lookup %q: empty response", rec.Name)
	}

	var p Profile
	if err := json.Unmarshal([]byte(stripFences(out.Choices[0].Message.Content)), &p); err != nil {
		return Profile{}, fmt.Errorf("lookup %q: bad JSON in response: %w", rec.Name, err)
	}
	return p, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
