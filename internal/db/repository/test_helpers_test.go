package repository

import sqlcgen "github.com/gokatarajesh/trivia-bank/internal/db/sqlc"

func questionRow(id int32, text, category string) sqlcgen.Question {
	return sqlcgen.Question{
		ID:         id,
		Question:   text,
		Answer:     "answer",
		Category:   category,
		Difficulty: 1,
	}
}
