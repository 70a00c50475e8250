package models

// All lists every table model in creation order.
func All() []interface{} {
	return []interface{}{
		(*User)(nil),
		(*UserPreference)(nil),
		(*DailyRecord)(nil),
		(*WeekdayGoal)(nil),
		(*BadgeAward)(nil),
		(*Buddy)(nil),
		(*QuestionQuota)(nil),
	}
}
