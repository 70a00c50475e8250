package services

import (
	"fmt"
	"strings"

	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
)

const (
	coachPersona  = "You are a tough love career coach."
	askPersona    = "You are JobPal, a tough love career coach who gives direct, motivational advice with a military/coach style tone. Use phrases like 'soldier', 'recruit', 'let's crush this', etc."
	wrapUpPersona = "You are a cold, elite headhunter with a sharp tongue and high standards."

	coachFeedbackFallback = "(⚠️ Error fetching coach feedback.)"
	askFailureReply       = "❌ TECHNICAL DIFFICULTIES, SOLDIER! Regroup and try again!"
)

func weeklyCoachPrompt(summary tracker.WeeklySummary) string {
	var days strings.Builder
	for _, day := range summary.Days {
		fmt.Fprintf(&days, "%s: Goal %d | Applied %d\n", day.Date.Weekday(), day.Goal, day.Done)
	}
	return fmt.Sprintf(`You are a cold and realistic career coach.
The user has job search goals and progress stats.
Give blunt feedback and estimate how long it may take to land interviews at this rate.
No fluff. Speak like a coach who cares more about results than feelings.

Weekly Summary:
Total Goal: %d
Total Applied: %d
Completion Rate: %.1f%%

Day-by-day breakdown:
%s`, summary.TotalGoal, summary.TotalDone, summary.Percent(), days.String())
}

func dailyNudgePrompt(name string, record tracker.Record) string {
	return fmt.Sprintf(`Write two short sentences of motivation for %s.
Today's goal: %d job applications. Logged so far: %d.
If the goal is met, celebrate it. Otherwise push them to finish the remaining %d.`,
		name, record.Goal, record.Done, max(record.Goal-record.Done, 0))
}

func wrapUpPrompt(top, least Performer) string {
	return fmt.Sprintf(`Generate a wrap-up in 6 lines:
1. Say 'Ladies and gentlemen,'
2. Celebrate top performer: %s nailed %d/%d applications. Add a sharp, witty compliment.
3. Roast lowest performer: %s only managed %d/%d. Add a clever jab that's motivating.
4–6. Based on these performance bars, give 3 different practical tips, no fluff:
[▉▉▉▉▁▁▁▁▁▁] 0–33%%
[▉▉▉▉▉▉▉▁▁▁] 34–67%%
[▉▉▉▉▉▉▉▉▉▁] 67–100%%
7. Close with: 'One percent better tomorrow.'`,
		top.Name, top.Done, top.Goal, least.Name, least.Done, least.Goal)
}

func staticWrapUp(top, least Performer) string {
	return fmt.Sprintf("Ladies and gentlemen,\n"+
		"Top performer: %s nailed %d/%d applications (you’re single-handedly keeping recruiters in business).\n"+
		"Lowest performer: %s only managed %d/%d apps. My office plant has more follow-ups than you (and it’s photosynthesizing).\n\n"+
		"Performance & tips:\n"+
		"[▉▉▉▉▁▁▁▁▁▁] 0–33%%: schedule two 30-min sprints at 9 AM and 1 PM. Treat it like a pop quiz you can’t skip.\n"+
		"[▉▉▉▉▉▉▉▁▁▁] 34–67%%: tackle your toughest listing first thing in the morning, like ripping off a band-aid.\n"+
		"[▉▉▉▉▉▉▉▉▉▁] 67–100%%: send a laser-focused follow-up to two hiring managers. Quality over quantity.\n\n"+
		"One percent better tomorrow.",
		top.Name, top.Done, top.Goal, least.Name, least.Done, least.Goal)
}

const emptyWrapUp = "Ladies and gentlemen,\nNobody logged an application today. The leaderboard is wide open tomorrow.\n\nOne percent better tomorrow."
