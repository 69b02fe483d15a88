package service

import (
	"context"
	"devquiz_backend/internal/model"
	"devquiz_backend/internal/repository"
	"devquiz_backend/pkg/logger"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const positionAveragesCacheKey = "analytics:position_averages"
const positionAveragesCacheTTL = time.Minute

// AnalyticsService serves read-side score aggregations. Everything is a
// projection over the quizzes table; passed is always derived from the
// score, never read from the stored flag.
type AnalyticsService struct {
	Repo *repository.AnalyticsRepository
	RDB  *redis.Client
}

func NewAnalyticsService(repo *repository.AnalyticsRepository, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{Repo: repo, RDB: rdb}
}

type ScoreEntry struct {
	QuizID     uint       `json:"quizId"`
	UserID     uint       `json:"userId"`
	PositionID uint       `json:"positionId"`
	TotalScore int        `json:"totalScore"`
	Passed     bool       `json:"passed"`
	Controlled bool       `json:"controlled"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

func toScoreEntries(quizzes []model.Quiz) []ScoreEntry {
	entries := make([]ScoreEntry, 0, len(quizzes))
	for _, q := range quizzes {
		entries = append(entries, ScoreEntry{
			QuizID:     q.ID,
			UserID:     q.UserID,
			PositionID: q.PositionID,
			TotalScore: q.TotalScore,
			Passed:     q.TotalScore >= PassThreshold,
			Controlled: q.Controlled,
			FinishedAt: q.FinishedAt,
		})
	}
	return entries
}

func (s *AnalyticsService) TopScoresByPosition(positionID uint, limit int, ascending bool) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	quizzes, err := s.Repo.TopQuizzesByPosition(positionID, limit, ascending)
	if err != nil {
		return nil, err
	}
	return toScoreEntries(quizzes), nil
}

func (s *AnalyticsService) TopScoresByUser(userID uint, limit int, ascending bool) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	quizzes, err := s.Repo.TopQuizzesByUser(userID, limit, ascending)
	if err != nil {
		return nil, err
	}
	return toScoreEntries(quizzes), nil
}

func (s *AnalyticsService) HighestScore(positionID uint) (*ScoreEntry, error) {
	quiz, err := s.Repo.HighestQuiz(positionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	entries := toScoreEntries([]model.Quiz{*quiz})
	return &entries[0], nil
}

func (s *AnalyticsService) LowestScore(positionID uint) (*ScoreEntry, error) {
	quiz, err := s.Repo.LowestQuiz(positionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	entries := toScoreEntries([]model.Quiz{*quiz})
	return &entries[0], nil
}

func (s *AnalyticsService) PassedQuizzes(positionID uint) ([]ScoreEntry, error) {
	quizzes, err := s.Repo.QuizzesByOutcome(positionID, PassThreshold, true)
	if err != nil {
		return nil, err
	}
	return toScoreEntries(quizzes), nil
}

func (s *AnalyticsService) FailedQuizzes(positionID uint) ([]ScoreEntry, error) {
	quizzes, err := s.Repo.QuizzesByOutcome(positionID, PassThreshold, false)
	if err != nil {
		return nil, err
	}
	return toScoreEntries(quizzes), nil
}

// PositionAverages is cached in redis for a minute; the aggregation scans
// the whole quizzes table and dashboards poll it.
func (s *AnalyticsService) PositionAverages(ctx context.Context) ([]repository.PositionAverageRow, error) {
	if s.RDB != nil {
		cached, err := s.RDB.Get(ctx, positionAveragesCacheKey).Result()
		if err == nil {
			var rows []repository.PositionAverageRow
			if jsonErr := json.Unmarshal([]byte(cached), &rows); jsonErr == nil {
				return rows, nil
			}
		}
	}

	rows, err := s.Repo.AverageScoreByPosition()
	if err != nil {
		return nil, err
	}

	if s.RDB != nil {
		if payload, err := json.Marshal(rows); err == nil {
			if err := s.RDB.Set(ctx, positionAveragesCacheKey, payload, positionAveragesCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache position averages", zap.Error(err))
			}
		}
	}

	return rows, nil
}
