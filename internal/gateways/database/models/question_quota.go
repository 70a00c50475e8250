package models

import "github.com/uptrace/bun"

type QuestionQuota struct {
	bun.BaseModel `bun:"table:user_questions,alias:user_questions"`

	UserID int64  `bun:"user_id,pk"`
	Day    string `bun:"day,pk"`
	Count  int    `bun:"count,notnull,default:0"`
}
