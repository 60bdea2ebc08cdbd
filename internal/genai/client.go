package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/auralabs/aura/internal/config"
)

// Client calls a generateContent-style generative-language endpoint
// over plain HTTP and parses the structured JSON answers.
type Client struct {
	cfg        config.GenAIConfig
	httpClient *http.Client
	log        *logrus.Entry
}

// NewClient creates a client from the resolved configuration.
func NewClient(cfg config.GenAIConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logrus.WithField("component", "genai"),
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

var recommendationSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"vibe": {"type": "STRING"},
		"description": {"type": "STRING"},
		"suggestedArtist": {"type": "STRING"},
		"suggestedGenre": {"type": "STRING"},
		"suggestedPlaylist": {
			"type": "ARRAY",
			"items": {
				"type": "OBJECT",
				"properties": {
					"title": {"type": "STRING"},
					"artist": {"type": "STRING"}
				}
			}
		}
	},
	"required": ["vibe", "description"]
}`)

var searchSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"title": {"type": "STRING"},
			"artist": {"type": "STRING"},
			"album": {"type": "STRING"},
			"coverUrl": {"type": "STRING"}
		},
		"required": ["title", "artist"]
	}
}`)

// Recommend implements Service.
func (c *Client) Recommend(ctx context.Context, mood string, favorites, libraryHint []string) (*Recommendation, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The listener feels: %q.\n", mood)
	if len(favorites) > 0 {
		fmt.Fprintf(&sb, "They like these songs: %s.\n", strings.Join(favorites, ", "))
	}
	if len(libraryHint) > 0 {
		fmt.Fprintf(&sb, "These songs are already in their library, prefer them in the suggested playlist so they can play immediately: %s.\n",
			strings.Join(libraryHint, ", "))
	}
	sb.WriteString("Suggest a dominant vibe, a one-sentence description, a representative artist and genre, and a playlist of 5 matching songs.")

	text, err := c.generate(ctx, sb.String(), recommendationSchema)
	if err != nil {
		return nil, err
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return nil, &ServiceError{Kind: KindUnknown, Message: fmt.Sprintf("decode recommendation: %v", err)}
	}
	return &rec, nil
}

// Search implements Service.
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	prompt := fmt.Sprintf(
		"Search the web for songs matching %q. Return the best 8 real, existing tracks with title, artist, album and a cover image URL when known.",
		query)

	text, err := c.generate(ctx, prompt, searchSchema)
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	if err := json.Unmarshal([]byte(text), &candidates); err != nil {
		return nil, &ServiceError{Kind: KindUnknown, Message: fmt.Sprintf("decode search results: %v", err)}
	}
	return candidates, nil
}

// SongInsight implements Service.
func (c *Client) SongInsight(ctx context.Context, title, artist string) (string, error) {
	prompt := fmt.Sprintf("Give one interesting, artistic fact about the song %q by %q. Under 50 words.", title, artist)
	return c.generate(ctx, prompt, nil)
}

// SongStory implements Service.
func (c *Client) SongStory(ctx context.Context, title, artist string, alternate bool) (string, error) {
	style := "Tell the short story or meaning behind"
	if alternate {
		style = "Tell a surreal, abstract, futuristic alternative story about"
	}
	prompt := fmt.Sprintf("%s the song %q by %q. Around 80-100 words.", style, title, artist)
	return c.generate(ctx, prompt, nil)
}

func (c *Client) generate(ctx context.Context, prompt string, schema json.RawMessage) (string, error) {
	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if schema != nil {
		payload.GenerationConfig = &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &ServiceError{Kind: KindUnknown, Message: fmt.Sprintf("marshal request: %v", err)}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &ServiceError{Kind: KindUnknown, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ServiceError{Kind: KindUnknown, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	// Rate-limit rejections often carry non-JSON bodies; classify them
	// before attempting to decode.
	if resp.StatusCode == http.StatusTooManyRequests {
		c.log.WithField("model", c.cfg.Model).Warn("quota exceeded")
		return "", &ServiceError{Kind: KindQuotaExceeded, Message: "API quota exceeded"}
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &ServiceError{Kind: KindUnknown, Message: fmt.Sprintf("decode response: %v", err)}
	}

	if parsed.Error != nil && parsed.Error.Status == "RESOURCE_EXHAUSTED" {
		c.log.WithField("model", c.cfg.Model).Warn("quota exceeded")
		return "", &ServiceError{Kind: KindQuotaExceeded, Message: "API quota exceeded"}
	}
	if parsed.Error != nil {
		return "", &ServiceError{Kind: KindUnknown, Message: parsed.Error.Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ServiceError{Kind: KindUnknown, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", &ServiceError{Kind: KindUnknown, Message: "empty response"}
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
