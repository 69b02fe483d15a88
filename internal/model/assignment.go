package model

// Assignment is the single-question take-home variant of a quiz: one
// UserAnswer, the same grading fields and review workflow.
// swagger:model Assignment
type Assignment struct {
	BaseModel
	UserID      uint        `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	PositionID  uint        `gorm:"index;type:bigint unsigned;not null" json:"positionId"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Score       int         `gorm:"default:0" json:"score"`
	Passed      bool        `gorm:"default:false" json:"passed"`
	Controlled  bool        `gorm:"default:false" json:"controlled"`
	Comment     string      `gorm:"type:text" json:"comment,omitempty"`
	Answer      *UserAnswer `gorm:"foreignKey:AssignmentID" json:"answer,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}
