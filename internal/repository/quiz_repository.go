package repository

import (
	"devquiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// Create persists the quiz together with its placeholder answers through
// the gorm association.
func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Answers").
		Preload("Answers.Question").
		Preload("Answers.Question.Choices").
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Save writes the quiz row and all of its answer rows in one transaction.
func (r *QuizRepository) Save(quiz *model.Quiz) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Answers").Save(quiz).Error; err != nil {
			return err
		}
		for i := range quiz.Answers {
			if err := tx.Omit("Question").Save(&quiz.Answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *QuizRepository) FindByUserID(userID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.
		Preload("Answers").
		Preload("Answers.Question").
		Where("user_id = ?", userID).
		Order("started_at desc").
		Find(&quizzes).Error
	return quizzes, err
}
