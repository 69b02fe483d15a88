package repository

import (
	"devquiz_backend/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// TopQuizzesByPosition returns the N best (or worst, ascending) finished
// quizzes for a position.
func (r *AnalyticsRepository) TopQuizzesByPosition(positionID uint, limit int, ascending bool) ([]model.Quiz, error) {
	order := "total_score desc"
	if ascending {
		order = "total_score asc"
	}

	var quizzes []model.Quiz
	err := r.DB.
		Where("position_id = ? AND finished_at IS NOT NULL", positionID).
		Order(order).
		Limit(limit).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *AnalyticsRepository) TopQuizzesByUser(userID uint, limit int, ascending bool) ([]model.Quiz, error) {
	order := "total_score desc"
	if ascending {
		order = "total_score asc"
	}

	var quizzes []model.Quiz
	err := r.DB.
		Where("user_id = ? AND finished_at IS NOT NULL", userID).
		Order(order).
		Limit(limit).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *AnalyticsRepository) HighestQuiz(positionID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Where("position_id = ? AND finished_at IS NOT NULL", positionID).
		Order("total_score desc").
		First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *AnalyticsRepository) LowestQuiz(positionID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Where("position_id = ? AND finished_at IS NOT NULL", positionID).
		Order("total_score asc").
		First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// QuizzesByOutcome selects finished quizzes above or below the pass
// threshold. The threshold lives in the service layer; it is passed in so
// the query stays a pure projection.
func (r *AnalyticsRepository) QuizzesByOutcome(positionID uint, passThreshold int, passed bool) ([]model.Quiz, error) {
	cmp := "total_score >= ?"
	if !passed {
		cmp = "total_score < ?"
	}

	var quizzes []model.Quiz
	err := r.DB.
		Where("position_id = ? AND finished_at IS NOT NULL", positionID).
		Where(cmp, passThreshold).
		Order("total_score desc").
		Find(&quizzes).Error
	return quizzes, err
}

type PositionAverageRow struct {
	PositionID   uint    `json:"positionId"`
	PositionName string  `json:"positionName"`
	QuizCount    int64   `json:"quizCount"`
	AverageScore float64 `json:"averageScore"`
}

func (r *AnalyticsRepository) AverageScoreByPosition() ([]PositionAverageRow, error) {
	var rows []PositionAverageRow
	err := r.DB.Table("quizzes q").
		Select("q.position_id, p.name as position_name, COUNT(*) as quiz_count, AVG(q.total_score) as average_score").
		Joins("JOIN positions p ON p.id = q.position_id").
		Where("q.finished_at IS NOT NULL AND q.deleted_at IS NULL").
		Group("q.position_id, p.name").
		Order("average_score desc").
		Scan(&rows).Error
	return rows, err
}
