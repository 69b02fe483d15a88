package model

// Position is an open role with its own question bank. Deleting one takes
// its questions and quizzes with it (repository-level transaction).
// swagger:model Position
type Position struct {
	BaseModel
	Name      string     `gorm:"size:255;not null" json:"name"`
	Questions []Question `gorm:"foreignKey:PositionID" json:"questions,omitempty"`
	Quizzes   []Quiz     `gorm:"foreignKey:PositionID" json:"-"`
}

func (Position) TableName() string {
	return "positions"
}
