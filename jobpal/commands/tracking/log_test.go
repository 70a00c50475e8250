package tracking

import (
	"strings"
	"testing"
	"time"

	"github.com/disgoorg/disgo/discord"

	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
)

func TestLogPanel(t *testing.T) {
	day := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	embed, components := logPanel(42, tracker.Record{UserID: 42, Date: day, Goal: 3, Done: 1}, false)
	if !strings.Contains(embed.Description, "✅⬜️⬜️") || !strings.Contains(embed.Description, "**1/3**") {
		t.Errorf("description = %q", embed.Description)
	}
	if len(components) != 1 {
		t.Fatalf("got %d rows, want 1", len(components))
	}
	row := components[0].(discord.ActionRowComponent)
	var ids []string
	for _, c := range row.Components() {
		ids = append(ids, c.(discord.ButtonComponent).CustomID)
	}
	want := []string{"/log/dec/42/2024-03-06", "/log/inc/42/2024-03-06", "/log/batch/42/2024-03-06", "/log/done/42/2024-03-06"}
	if strings.Join(ids, " ") != strings.Join(want, " ") {
		t.Errorf("button ids = %v, want %v", ids, want)
	}

	embed, components = logPanel(42, tracker.Record{UserID: 42, Date: day, Goal: 0, Done: 2}, true)
	if len(components) != 0 {
		t.Errorf("closed panel has %d rows", len(components))
	}
	if !strings.Contains(embed.Description, "No goal set") {
		t.Errorf("description = %q", embed.Description)
	}
}

func TestBatchModal(t *testing.T) {
	modal := batchModal(42, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	if modal.CustomID != "/log-batch/42/2024-03-04" {
		t.Errorf("CustomID = %q", modal.CustomID)
	}
	if modal.Title != "Batch log for Mon, Mar 04" {
		t.Errorf("Title = %q", modal.Title)
	}
}
