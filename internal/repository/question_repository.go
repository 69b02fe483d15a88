package repository

import (
	"devquiz_backend/internal/model"
	"devquiz_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.Preload("Choices").First(&q, id).Error
	return &q, err
}

// ListByPosition returns the position's question bank with choices loaded.
// Type and difficulty filters are optional (zero value skips them).
func (r *QuestionRepository) ListByPosition(positionID uint, questionType model.QuestionType, difficulty int) ([]model.Question, error) {
	query := r.DB.Preload("Choices").Where("position_id = ?", positionID)
	if questionType != "" {
		query = query.Where("question_type = ?", questionType)
	}
	if difficulty > 0 {
		query = query.Where("difficulty_level = ?", difficulty)
	}

	var questions []model.Question
	err := query.Order("difficulty_level asc, created_at desc").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

func (r *QuestionRepository) CreateChoice(choice *model.Choice) error {
	return r.DB.Create(choice).Error
}

// DeleteChoice is restricted while any submitted answer still references
// the choice.
func (r *QuestionRepository) DeleteChoice(id uint) error {
	var refs int64
	if err := r.DB.Model(&model.UserAnswer{}).Where("choice_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return util.ErrChoiceReferenced
	}
	return r.DB.Delete(&model.Choice{}, id).Error
}
