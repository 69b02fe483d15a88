package service

import (
	"context"
	"devquiz_backend/internal/model"
	"devquiz_backend/internal/repository"
	"devquiz_backend/internal/util"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionService struct {
	Repo    *repository.QuestionRepository
	Storage *StorageService
}

func NewQuestionService(repo *repository.QuestionRepository, storage *StorageService) *QuestionService {
	return &QuestionService{Repo: repo, Storage: storage}
}

type ChoiceReq struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionReq struct {
	PositionID      uint               `json:"positionId" binding:"required"`
	Text            string             `json:"text" binding:"required"`
	QuestionType    model.QuestionType `json:"questionType" binding:"required,oneof=theoretical practical"`
	DifficultyLevel int                `json:"difficultyLevel" binding:"required,min=1,max=5"`
	Points          int                `json:"points"`
	Choices         []ChoiceReq        `json:"choices"`
}

func (s *QuestionService) Create(req QuestionReq) (*model.Question, error) {
	if req.QuestionType == model.Practical && len(req.Choices) > 0 {
		return nil, util.ErrChoicesOnPractical
	}

	question := &model.Question{
		PositionID:      req.PositionID,
		Text:            req.Text,
		QuestionType:    req.QuestionType,
		DifficultyLevel: req.DifficultyLevel,
		Points:          req.Points,
	}
	for _, c := range req.Choices {
		question.Choices = append(question.Choices, model.Choice{
			Text:      c.Text,
			IsCorrect: c.IsCorrect,
		})
	}

	if err := s.Repo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) GetByID(id uint) (*model.Question, error) {
	question, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) ListByPosition(positionID uint, questionType model.QuestionType, difficulty int) ([]model.Question, error) {
	return s.Repo.ListByPosition(positionID, questionType, difficulty)
}

func (s *QuestionService) Update(id uint, req QuestionReq) (*model.Question, error) {
	question, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	question.Text = req.Text
	question.DifficultyLevel = req.DifficultyLevel
	question.Points = req.Points

	if err := s.Repo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *QuestionService) AddChoice(questionID uint, req ChoiceReq) (*model.Choice, error) {
	question, err := s.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	if question.QuestionType != model.Theoretical {
		return nil, util.ErrChoicesOnPractical
	}

	choice := &model.Choice{
		QuestionID: questionID,
		Text:       req.Text,
		IsCorrect:  req.IsCorrect,
	}
	if err := s.Repo.CreateChoice(choice); err != nil {
		return nil, err
	}
	return choice, nil
}

func (s *QuestionService) DeleteChoice(choiceID uint) error {
	return s.Repo.DeleteChoice(choiceID)
}

// UploadAttachment stores a supporting file for a practical question (a
// code skeleton, a dataset, a diagram) and records its URL on the row.
func (s *QuestionService) UploadAttachment(ctx context.Context, questionID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	question, err := s.GetByID(questionID)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("questions/%d/%s%s", questionID, uuid.New().String(), filepath.Ext(filename))
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	question.Attachment = url
	if err := s.Repo.Update(question); err != nil {
		return "", err
	}
	return url, nil
}
