package model

import "time"

// Quiz is one candidate attempt against a position's question bank. Its
// answer set is fixed at creation (one placeholder per sampled question)
// and only the placeholder fields mutate afterwards.
// swagger:model Quiz
type Quiz struct {
	BaseModel
	UserID     uint         `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	PositionID uint         `gorm:"index;type:bigint unsigned;not null" json:"positionId"`
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt *time.Time   `json:"finishedAt,omitempty"`
	TotalScore int          `gorm:"default:0" json:"totalScore"`
	Passed     bool         `gorm:"default:false" json:"passed"`
	Controlled bool         `gorm:"default:false" json:"controlled"` // true once admin review ran
	Comment    string       `gorm:"type:text" json:"comment,omitempty"`
	Answers    []UserAnswer `gorm:"foreignKey:QuizID" json:"answers,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// UserAnswer is a single answer slot. It hangs off either a Quiz or an
// Assignment, never both; the nullable grading fields stay nil until the
// submit/review operations fill them.
// swagger:model UserAnswer
type UserAnswer struct {
	BaseModel
	QuizID          *uint     `gorm:"index;type:bigint unsigned" json:"quizId,omitempty"`
	AssignmentID    *uint     `gorm:"index;type:bigint unsigned" json:"assignmentId,omitempty"`
	QuestionID      uint      `gorm:"index;type:bigint unsigned;not null" json:"questionId"`
	Question        *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	ChoiceID        *uint     `gorm:"type:bigint unsigned" json:"choiceId,omitempty"`
	IsCorrect       *bool     `json:"isCorrect,omitempty"`
	AnswerText      *string   `gorm:"type:text" json:"answerText,omitempty"`
	PracticalScore  *int      `json:"practicalScore,omitempty"` // 0-10, admin-assigned
	PracticalStatus string    `gorm:"size:50" json:"practicalAnswerStatus,omitempty"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
