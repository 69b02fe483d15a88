package service

import (
	"devquiz_backend/internal/model"
	"devquiz_backend/internal/util"
	"devquiz_backend/pkg/logger"
	"errors"
	"math/rand/v2"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AssignmentStore interface {
	Create(assignment *model.Assignment) error
	FindByID(id uint) (*model.Assignment, error)
	Save(assignment *model.Assignment) error
	FindByUserID(userID uint) ([]model.Assignment, error)
}

// AssignmentService runs the single-question variant of the quiz
// lifecycle. The answer entity, grading helpers and status labels are
// shared with QuizService; only the container differs.
type AssignmentService struct {
	Assignments AssignmentStore
	Questions   QuestionBank
}

func NewAssignmentService(assignments AssignmentStore, questions QuestionBank) *AssignmentService {
	return &AssignmentService{Assignments: assignments, Questions: questions}
}

type CreateAssignmentReq struct {
	UserID      uint   `json:"userId" binding:"required"`
	PositionID  uint   `json:"positionId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	// QuestionID pins the assignment to a question; zero means draw a
	// random practical question from the position's bank.
	QuestionID uint `json:"questionId"`
}

type SubmitAssignmentReq struct {
	ChoiceID   *uint   `json:"choiceId"`
	AnswerText *string `json:"answerText"`
}

type AssignmentResult struct {
	AssignmentID uint          `json:"assignmentId"`
	UserID       uint          `json:"userId"`
	PositionID   uint          `json:"positionId"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Score        int           `json:"score"`
	Passed       bool          `json:"passed"`
	Controlled   bool          `json:"controlled"`
	Comment      string        `json:"comment,omitempty"`
	Message      string        `json:"message"`
	Answer       *AnswerResult `json:"answer,omitempty"`
	Question     *QuestionView `json:"question,omitempty"`
}

func (s *AssignmentService) CreateAssignment(req CreateAssignmentReq) (*AssignmentResult, error) {
	questionID := req.QuestionID
	if questionID == 0 {
		practical, err := s.Questions.ListByPosition(req.PositionID, model.Practical, 0)
		if err != nil {
			return nil, err
		}
		if len(practical) == 0 {
			return nil, util.ErrQuestionNotFound
		}
		questionID = practical[rand.IntN(len(practical))].ID
	}

	assignment := &model.Assignment{
		UserID:      req.UserID,
		PositionID:  req.PositionID,
		Title:       req.Title,
		Description: req.Description,
		Answer:      &model.UserAnswer{QuestionID: questionID},
	}

	if err := s.Assignments.Create(assignment); err != nil {
		return nil, err
	}

	logger.Log.Info("assignment created",
		zap.Uint("assignmentId", assignment.ID),
		zap.Uint("userId", req.UserID),
		zap.Uint("questionId", questionID))

	// reload so the answer carries its question and choices
	created, err := s.Assignments.FindByID(assignment.ID)
	if err != nil {
		return nil, err
	}
	return s.projectAssignment(created), nil
}

func (s *AssignmentService) SubmitAssignment(assignmentID uint, req SubmitAssignmentReq) (*AssignmentResult, error) {
	assignment, err := s.findAssignment(assignmentID)
	if err != nil {
		return nil, err
	}

	ua := assignment.Answer
	if ua == nil || ua.Question == nil {
		return nil, util.ErrAssignmentNotFound
	}
	if ua.ChoiceID != nil || ua.AnswerText != nil {
		return nil, util.ErrAlreadySubmitted
	}

	ua.ChoiceID = req.ChoiceID
	ua.AnswerText = req.AnswerText
	if ua.Question.QuestionType == model.Theoretical {
		correct := gradeChoice(ua.Question, req.ChoiceID)
		ua.IsCorrect = &correct
	}

	assignment.Score = scoreAnswers([]model.UserAnswer{*ua})
	assignment.Passed = assignment.Score >= PassThreshold

	if err := s.Assignments.Save(assignment); err != nil {
		return nil, err
	}
	return s.projectAssignment(assignment), nil
}

func (s *AssignmentService) ReviewAssignment(assignmentID uint, score int, comment string) (*AssignmentResult, error) {
	if score < 0 || score > MaxPracticalScore {
		return nil, util.ErrScoreOutOfRange
	}

	assignment, err := s.findAssignment(assignmentID)
	if err != nil {
		return nil, err
	}

	ua := assignment.Answer
	if ua == nil || ua.Question == nil {
		return nil, util.ErrAssignmentNotFound
	}
	if ua.Question.QuestionType != model.Practical {
		return nil, util.ErrNotPracticalAnswer
	}

	ua.PracticalScore = &score
	ua.PracticalStatus = PracticalStatusForScore(score)

	assignment.Score = scoreAnswers([]model.UserAnswer{*ua})
	assignment.Passed = assignment.Score >= PassThreshold
	assignment.Controlled = true
	if comment != "" {
		assignment.Comment = comment
	}

	if err := s.Assignments.Save(assignment); err != nil {
		return nil, err
	}

	logger.Log.Info("assignment reviewed",
		zap.Uint("assignmentId", assignment.ID),
		zap.Int("score", assignment.Score))

	return s.projectAssignment(assignment), nil
}

func (s *AssignmentService) GetAssignmentByID(assignmentID uint) (*AssignmentResult, error) {
	assignment, err := s.findAssignment(assignmentID)
	if err != nil {
		return nil, err
	}
	return s.projectAssignment(assignment), nil
}

func (s *AssignmentService) GetAssignmentsByUserID(userID uint) ([]AssignmentResult, error) {
	assignments, err := s.Assignments.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	results := make([]AssignmentResult, 0, len(assignments))
	for i := range assignments {
		results = append(results, *s.projectAssignment(&assignments[i]))
	}
	return results, nil
}

func (s *AssignmentService) findAssignment(id uint) (*model.Assignment, error) {
	assignment, err := s.Assignments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) projectAssignment(assignment *model.Assignment) *AssignmentResult {
	message := MsgAwaitingReview
	if assignment.Controlled {
		message = MsgReviewed
	}

	result := &AssignmentResult{
		AssignmentID: assignment.ID,
		UserID:       assignment.UserID,
		PositionID:   assignment.PositionID,
		Title:        assignment.Title,
		Description:  assignment.Description,
		Score:        assignment.Score,
		Passed:       assignment.Score >= PassThreshold,
		Controlled:   assignment.Controlled,
		Comment:      assignment.Comment,
		Message:      message,
	}

	if ua := assignment.Answer; ua != nil {
		ar := AnswerResult{
			UserAnswerID:    ua.ID,
			QuestionID:      ua.QuestionID,
			ChoiceID:        ua.ChoiceID,
			IsCorrect:       ua.IsCorrect,
			AnswerText:      ua.AnswerText,
			PracticalScore:  ua.PracticalScore,
			PracticalStatus: ua.PracticalStatus,
		}
		if ua.Question != nil {
			ar.QuestionType = ua.Question.QuestionType
			qv := toQuestionView(*ua.Question)
			result.Question = &qv
		}
		result.Answer = &ar
	}
	return result
}
