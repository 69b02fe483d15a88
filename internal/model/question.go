package model

type QuestionType string

const (
	Theoretical QuestionType = "theoretical"
	Practical   QuestionType = "practical"
)

// swagger:model Question
type Question struct {
	BaseModel
	PositionID      uint         `gorm:"index;type:bigint unsigned;not null" json:"positionId"`
	Text            string       `gorm:"type:text;not null" json:"text"`
	QuestionType    QuestionType `gorm:"type:enum('theoretical','practical');not null" json:"questionType"`
	DifficultyLevel int          `gorm:"not null" json:"difficultyLevel"` // 1-5
	Points          int          `gorm:"default:0" json:"points"`         // practical only
	Attachment      string       `gorm:"size:255" json:"attachment,omitempty"`
	Choices         []Choice     `gorm:"foreignKey:QuestionID" json:"choices,omitempty"`
	UserAnswers     []UserAnswer `gorm:"foreignKey:QuestionID" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// Choice belongs to a theoretical question. IsCorrect is the grading truth
// recorded once at authoring time; answers are graded against it at
// submission and never re-validated.
// swagger:model Choice
type Choice struct {
	BaseModel
	QuestionID uint   `gorm:"index;type:bigint unsigned;not null" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
}

func (Choice) TableName() string {
	return "choices"
}
