package api

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Anonymous   bool   `json:"anonymous"`
	Total       int    `json:"total"`
}

type LeaderboardResponse struct {
	Window     string             `json:"window"`
	From       string             `json:"from"`
	To         string             `json:"to"`
	GrandTotal int                `json:"grand_total"`
	Entries    []LeaderboardEntry `json:"entries"`
}

type DayResponse struct {
	Date string `json:"date"`
	Goal int    `json:"goal"`
	Done int    `json:"done"`
	Met  bool   `json:"met"`
}

type WeekResponse struct {
	UserID    string        `json:"user_id"`
	WeekStart string        `json:"week_start"`
	Days      []DayResponse `json:"days"`
	TotalGoal int           `json:"total_goal"`
	TotalDone int           `json:"total_done"`
	Percent   float64       `json:"percent"`
	Streak    int           `json:"streak"`
}

type BadgeResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	AwardedAt   string `json:"awarded_at,omitempty"`
	Progress    string `json:"progress,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
