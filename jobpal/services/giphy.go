package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

type GiphySettings struct {
	BaseURL  string
	APIKey   string
	Tag      string
	Rating   string
	Timeout  time.Duration
	Fallback string
}

// GiphyClient fetches a random GIF URL and never fails: any error yields the
// static fallback.
type GiphyClient struct {
	httpClient *http.Client
	settings   GiphySettings
}

func NewGiphyClient(settings GiphySettings) *GiphyClient {
	if settings.Timeout <= 0 {
		settings.Timeout = 5 * time.Second
	}
	return &GiphyClient{
		httpClient: &http.Client{Timeout: settings.Timeout},
		settings:   settings,
	}
}

func (g *GiphyClient) Random(ctx context.Context) string {
	if g.settings.APIKey == "" {
		return g.settings.Fallback
	}
	gif, err := g.fetch(ctx)
	if err != nil {
		slog.Warn("Giphy request failed, using fallback",
			slog.String("type", "sys"),
			slog.String("tag", g.settings.Tag),
			slog.Any("error", err))
		return g.settings.Fallback
	}
	return gif
}

func (g *GiphyClient) fetch(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.settings.Timeout)
	defer cancel()

	params := url.Values{}
	params.Set("api_key", g.settings.APIKey)
	params.Set("tag", g.settings.Tag)
	params.Set("rating", g.settings.Rating)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.settings.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("giphy returned status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Images struct {
				Original struct {
					URL string `json:"url"`
				} `json:"original"`
			} `json:"images"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Data.Images.Original.URL == "" {
		return "", fmt.Errorf("giphy response has no image")
	}
	return body.Data.Images.Original.URL, nil
}
