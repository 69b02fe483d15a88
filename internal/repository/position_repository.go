package repository

import (
	"devquiz_backend/internal/model"

	"gorm.io/gorm"
)

type PositionRepository struct {
	DB *gorm.DB
}

func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{DB: db}
}

func (r *PositionRepository) Create(position *model.Position) error {
	return r.DB.Create(position).Error
}

func (r *PositionRepository) FindByID(id uint) (*model.Position, error) {
	var position model.Position
	err := r.DB.First(&position, id).Error
	return &position, err
}

func (r *PositionRepository) List(page, limit int) ([]model.Position, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Position{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var positions []model.Position
	query := r.DB.Order("created_at desc")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	err := query.Find(&positions).Error
	return positions, total, err
}

func (r *PositionRepository) Update(position *model.Position) error {
	return r.DB.Save(position).Error
}

// Delete removes a position and everything hanging off it: its questions
// with their choices and answers, and its quizzes with their answers.
func (r *PositionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&model.Question{}).Where("position_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.UserAnswer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Choice{}).Error; err != nil {
				return err
			}
			if err := tx.Where("position_id = ?", id).Delete(&model.Question{}).Error; err != nil {
				return err
			}
		}

		var quizIDs []uint
		if err := tx.Model(&model.Quiz{}).Where("position_id = ?", id).Pluck("id", &quizIDs).Error; err != nil {
			return err
		}
		if len(quizIDs) > 0 {
			if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&model.UserAnswer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("position_id = ?", id).Delete(&model.Quiz{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Position{}, id).Error
	})
}
