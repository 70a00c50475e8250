package api

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/internal/domain/leaderboard"
)

const requestTimeout = 5 * time.Second

// errUnknownUser covers both missing and anonymous users so the API does not
// reveal which ids exist.
var errUnknownUser = errors.New("user not found")

func (handler *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	if err := handler.db.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "database": "unreachable"})
	}
	return c.JSON(fiber.Map{"status": "ok", "database": "ok"})
}

func (handler *Handler) Leaderboard(c *fiber.Ctx) error {
	window, err := leaderboard.ParseWindow(c.Query("window"))
	if err != nil {
		return sendError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	board, err := handler.ranker.Rank(ctx, window, handler.limit)
	if err != nil {
		return sendError(c, err)
	}

	response := LeaderboardResponse{
		Window:     board.Window.String(),
		From:       dates.Key(board.From),
		To:         dates.Key(board.To),
		GrandTotal: board.GrandTotal,
		Entries:    make([]LeaderboardEntry, 0, len(board.Entries)),
	}
	for _, entry := range board.Entries {
		userID := ""
		if !entry.Anonymous {
			userID = strconv.FormatInt(entry.UserID, 10)
		}
		response.Entries = append(response.Entries, LeaderboardEntry{
			Rank:        entry.Rank,
			UserID:      userID,
			DisplayName: entry.DisplayName,
			Anonymous:   entry.Anonymous,
			Total:       entry.Total,
		})
	}
	return c.JSON(response)
}

// UserWeek returns the week containing ?date= (default today).
func (handler *Handler) UserWeek(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return sendError(c, err)
	}

	day := handler.tracker.Today()
	if raw := c.Query("date"); raw != "" {
		if day, err = dates.Parse(raw); err != nil {
			return sendError(c, errs.Invalid("%v", err))
		}
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	if err := handler.checkPublic(ctx, userID); err != nil {
		return sendError(c, err)
	}
	summary, err := handler.tracker.WeeklySummary(ctx, userID, day)
	if err != nil {
		return sendError(c, err)
	}

	response := WeekResponse{
		UserID:    strconv.FormatInt(userID, 10),
		WeekStart: dates.Key(summary.WeekStart),
		Days:      make([]DayResponse, 0, len(summary.Days)),
		TotalGoal: summary.TotalGoal,
		TotalDone: summary.TotalDone,
		Percent:   summary.Percent(),
		Streak:    summary.Streak,
	}
	for _, record := range summary.Days {
		response.Days = append(response.Days, DayResponse{
			Date: dates.Key(record.Date),
			Goal: record.Goal,
			Done: record.Done,
			Met:  record.Met(),
		})
	}
	return c.JSON(response)
}

func (handler *Handler) UserBadges(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return sendError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	if err := handler.checkPublic(ctx, userID); err != nil {
		return sendError(c, err)
	}
	statuses, err := handler.badges.Summary(ctx, userID)
	if err != nil {
		return sendError(c, err)
	}

	response := make([]BadgeResponse, 0, len(statuses))
	for _, status := range statuses {
		item := BadgeResponse{
			Key:         status.Badge.Key(),
			Name:        status.Badge.Name(),
			Description: status.Badge.Description(),
			Earned:      status.Earned,
			Progress:    status.Progress,
		}
		if status.Earned {
			item.AwardedAt = status.AwardedAt.UTC().Format(time.RFC3339)
		}
		response = append(response, item)
	}
	return c.JSON(response)
}

// checkPublic admits only users who chose a display name, matching the
// leaderboard, which hides the ids of everyone else.
func (handler *Handler) checkPublic(ctx context.Context, userID int64) error {
	_, ok, err := handler.names.DisplayName(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return errUnknownUser
	}
	return nil
}

func userIDParam(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, errs.Invalid("invalid user id %q", raw)
	}
	return userID, nil
}

func sendError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal error"
	switch {
	case errors.Is(err, errUnknownUser):
		status, message = fiber.StatusNotFound, err.Error()
	case errs.IsInvalid(err):
		status, message = fiber.StatusBadRequest, err.Error()
	case errs.IsStorage(err):
		status, message = fiber.StatusServiceUnavailable, "storage unavailable"
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}
