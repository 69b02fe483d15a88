package repository

import (
	"devquiz_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.
		Preload("Answer").
		Preload("Answer.Question").
		Preload("Answer.Question.Choices").
		First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepository) Save(assignment *model.Assignment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Answer").Save(assignment).Error; err != nil {
			return err
		}
		if assignment.Answer != nil {
			if err := tx.Omit("Question").Save(assignment.Answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AssignmentRepository) FindByUserID(userID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.
		Preload("Answer").
		Preload("Answer.Question").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", id).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Assignment{}, id).Error
	})
}
