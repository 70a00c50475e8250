package services

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/leaderboard"
)

//go:embed templates/leaderboard.html
var leaderboardTemplate string

var leaderboardPage = template.Must(template.New("leaderboard").Parse(leaderboardTemplate))

type leaderboardPageData struct {
	Label      string
	Range      string
	Timestamp  string
	Entries    []leaderboard.Entry
	GrandTotal int
}

type LeaderboardImageService struct {
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewLeaderboardImageService(timeout time.Duration) *LeaderboardImageService {
	return &LeaderboardImageService{
		logger:  slog.With(slog.String("service", "leaderboard_image"), slog.String("type", "sys")),
		timeout: timeout,
		now:     time.Now,
	}
}

// RenderHTML fills the leaderboard page for board.
func (s *LeaderboardImageService) RenderHTML(board leaderboard.Board) (string, error) {
	span := dates.Key(board.From)
	if !board.From.Equal(board.To) {
		span += " → " + dates.Key(board.To)
	}
	data := leaderboardPageData{
		Label:      board.Window.Label(),
		Range:      span,
		Timestamp:  s.now().Format("15:04 MST"),
		Entries:    board.Entries,
		GrandTotal: board.GrandTotal,
	}

	var buf bytes.Buffer
	if err := leaderboardPage.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// Render screenshots the leaderboard page as a PNG using headless Chrome.
func (s *LeaderboardImageService) Render(ctx context.Context, board leaderboard.Board) ([]byte, error) {
	start := time.Now()

	page, err := s.RenderHTML(board)
	if err != nil {
		return nil, err
	}

	chromeCtx, cancel := chromedp.NewContext(ctx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()
	chromeCtx, cancel = context.WithTimeout(chromeCtx, s.timeout)
	defer cancel()

	var image []byte
	err = chromedp.Run(chromeCtx,
		chromedp.Navigate("data:text/html;base64,"+base64.StdEncoding.EncodeToString([]byte(page))),
		chromedp.WaitVisible("#leaderboard-container", chromedp.ByID),
		chromedp.Sleep(300*time.Millisecond),
		chromedp.Screenshot("#leaderboard-container", &image, chromedp.ByID),
	)
	if err != nil {
		s.logger.Error("Failed to render leaderboard image",
			slog.Any("error", err),
			slog.Duration("took", time.Since(start)))
		return nil, fmt.Errorf("failed to render leaderboard image: %w", err)
	}

	s.logger.Info("Leaderboard image rendered",
		slog.String("window", board.Window.String()),
		slog.Int("entries", len(board.Entries)),
		slog.Int("bytes", len(image)),
		slog.Duration("took", time.Since(start)))
	return image, nil
}
