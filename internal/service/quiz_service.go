package service

import (
	"devquiz_backend/internal/model"
	"devquiz_backend/internal/util"
	"devquiz_backend/pkg/logger"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuizStore is the persistence surface the quiz lifecycle needs. The gorm
// repository satisfies it; tests inject an in-memory fake.
type QuizStore interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	Save(quiz *model.Quiz) error
	FindByUserID(userID uint) ([]model.Quiz, error)
}

// QuestionBank hands out a position's question bank with choices loaded.
type QuestionBank interface {
	ListByPosition(positionID uint, questionType model.QuestionType, difficulty int) ([]model.Question, error)
}

type QuizService struct {
	Quizzes   QuizStore
	Questions QuestionBank
}

func NewQuizService(quizzes QuizStore, questions QuestionBank) *QuizService {
	return &QuizService{Quizzes: quizzes, Questions: questions}
}

type SubmittedAnswer struct {
	QuestionID uint    `json:"questionId" binding:"required"`
	ChoiceID   *uint   `json:"choiceId"`
	AnswerText *string `json:"answerText"`
}

type PracticalReview struct {
	UserAnswerID uint `json:"userAnswerId" binding:"required"`
	Score        int  `json:"score" binding:"min=0,max=10"`
}

// ChoiceView is what candidates see: the answer key stays server-side.
type ChoiceView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuestionView struct {
	ID              uint               `json:"id"`
	Text            string             `json:"text"`
	QuestionType    model.QuestionType `json:"questionType"`
	DifficultyLevel int                `json:"difficultyLevel"`
	Points          int                `json:"points,omitempty"`
	Attachment      string             `json:"attachment,omitempty"`
	Choices         []ChoiceView       `json:"choices,omitempty"`
}

type NewQuizView struct {
	QuizID     uint           `json:"quizId"`
	UserID     uint           `json:"userId"`
	PositionID uint           `json:"positionId"`
	StartedAt  time.Time      `json:"startedAt"`
	Questions  []QuestionView `json:"questions"`
}

type AnswerResult struct {
	UserAnswerID    uint               `json:"userAnswerId"`
	QuestionID      uint               `json:"questionId"`
	QuestionType    model.QuestionType `json:"questionType,omitempty"`
	ChoiceID        *uint              `json:"choiceId,omitempty"`
	IsCorrect       *bool              `json:"isCorrect,omitempty"`
	AnswerText      *string            `json:"answerText,omitempty"`
	PracticalScore  *int               `json:"practicalScore,omitempty"`
	PracticalStatus string             `json:"practicalAnswerStatus,omitempty"`
}

type QuizResult struct {
	QuizID     uint           `json:"quizId"`
	UserID     uint           `json:"userId"`
	PositionID uint           `json:"positionId"`
	TotalScore int            `json:"totalScore"`
	Passed     bool           `json:"passed"`
	Controlled bool           `json:"controlled"`
	FinishedAt *time.Time     `json:"finishedAt,omitempty"`
	Message    string         `json:"message"`
	Answers    []AnswerResult `json:"userAnswers"`
}

// CreateQuiz assembles a fresh attempt for the position: per difficulty
// level, 2 theoretical and 1 practical question drawn uniformly at random
// from the bank, persisted with one empty answer slot per question. An
// unknown position yields an empty question set rather than an error,
// matching the established contract. Repeated calls never deduplicate.
func (s *QuizService) CreateQuiz(positionID, userID uint) (*NewQuizView, error) {
	bank, err := s.Questions.ListByPosition(positionID, "", 0)
	if err != nil {
		return nil, err
	}

	var theoretical, practical []model.Question
	for _, q := range bank {
		switch q.QuestionType {
		case model.Theoretical:
			theoretical = append(theoretical, q)
		case model.Practical:
			practical = append(practical, q)
		}
	}

	selected := sampleByDifficulty(theoretical, TheoreticalPerLevel)
	selected = append(selected, sampleByDifficulty(practical, PracticalPerLevel)...)

	quiz := &model.Quiz{
		UserID:     userID,
		PositionID: positionID,
		StartedAt:  time.Now(),
	}
	for _, q := range selected {
		quiz.Answers = append(quiz.Answers, model.UserAnswer{QuestionID: q.ID})
	}

	if err := s.Quizzes.Create(quiz); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz created",
		zap.Uint("quizId", quiz.ID),
		zap.Uint("positionId", positionID),
		zap.Uint("userId", userID),
		zap.Int("questions", len(selected)))

	view := &NewQuizView{
		QuizID:     quiz.ID,
		UserID:     userID,
		PositionID: positionID,
		StartedAt:  quiz.StartedAt,
		Questions:  make([]QuestionView, 0, len(selected)),
	}
	for _, q := range selected {
		view.Questions = append(view.Questions, toQuestionView(q))
	}
	return view, nil
}

// SubmitQuiz grades a candidate's answer set. Theoretical answers grade
// immediately against the chosen choice; practical answers wait for
// review. Every slot whose question was not answered is penalized:
// theoretical false, practical zero with the zero-score label.
func (s *QuizService) SubmitQuiz(quizID uint, answers []SubmittedAnswer) (*QuizResult, error) {
	quiz, err := s.Quizzes.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	submitted := make(map[uint]SubmittedAnswer, len(answers))
	for _, a := range answers {
		submitted[a.QuestionID] = a
	}

	for i := range quiz.Answers {
		ua := &quiz.Answers[i]
		if ua.Question == nil {
			continue
		}

		sub, answered := submitted[ua.QuestionID]
		if !answered {
			switch ua.Question.QuestionType {
			case model.Theoretical:
				incorrect := false
				ua.IsCorrect = &incorrect
			case model.Practical:
				zero := 0
				ua.PracticalScore = &zero
				ua.PracticalStatus = PracticalStatusForScore(0)
			}
			continue
		}

		ua.ChoiceID = sub.ChoiceID
		ua.AnswerText = sub.AnswerText
		if ua.Question.QuestionType == model.Theoretical {
			correct := gradeChoice(ua.Question, sub.ChoiceID)
			ua.IsCorrect = &correct
		}
	}

	now := time.Now()
	quiz.FinishedAt = &now
	quiz.TotalScore = scoreAnswers(quiz.Answers)
	quiz.Passed = quiz.TotalScore >= PassThreshold

	if err := s.Quizzes.Save(quiz); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz submitted",
		zap.Uint("quizId", quiz.ID),
		zap.Int("totalScore", quiz.TotalScore),
		zap.Bool("passed", quiz.Passed))

	return s.projectResult(quiz), nil
}

// ReviewPracticalAnswers applies admin scores to pending practical
// answers. The whole batch is validated before anything mutates: an
// unknown quiz, an answer from another quiz, a theoretical target or a
// score outside 0-10 rejects the call without committing changes. The
// gin binding already bounds the score; the check here covers callers
// that bypass the HTTP layer. Afterwards the total is
// recomputed from scratch and the quiz is marked controlled, even when
// the batch covered only part of the practical answers.
func (s *QuizService) ReviewPracticalAnswers(quizID uint, reviews []PracticalReview) (*QuizResult, error) {
	if len(reviews) == 0 {
		return nil, util.ErrEmptyReview
	}

	quiz, err := s.Quizzes.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	byID := make(map[uint]*model.UserAnswer, len(quiz.Answers))
	for i := range quiz.Answers {
		byID[quiz.Answers[i].ID] = &quiz.Answers[i]
	}

	for _, rv := range reviews {
		if rv.Score < 0 || rv.Score > MaxPracticalScore {
			return nil, util.ErrScoreOutOfRange
		}
		ua, ok := byID[rv.UserAnswerID]
		if !ok {
			return nil, util.ErrAnswerNotInQuiz
		}
		if ua.Question == nil || ua.Question.QuestionType != model.Practical {
			return nil, util.ErrNotPracticalAnswer
		}
	}

	for _, rv := range reviews {
		ua := byID[rv.UserAnswerID]
		score := rv.Score
		ua.PracticalScore = &score
		ua.PracticalStatus = PracticalStatusForScore(score)
	}

	quiz.TotalScore = scoreAnswers(quiz.Answers)
	quiz.Passed = quiz.TotalScore >= PassThreshold
	quiz.Controlled = true

	if err := s.Quizzes.Save(quiz); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz reviewed",
		zap.Uint("quizId", quiz.ID),
		zap.Int("totalScore", quiz.TotalScore),
		zap.Int("reviewedAnswers", len(reviews)))

	return s.projectResult(quiz), nil
}

func (s *QuizService) GetQuizByID(quizID uint) (*QuizResult, error) {
	quiz, err := s.Quizzes.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return s.projectResult(quiz), nil
}

func (s *QuizService) GetQuizResultsByUserID(userID uint) ([]QuizResult, error) {
	quizzes, err := s.Quizzes.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	results := make([]QuizResult, 0, len(quizzes))
	for i := range quizzes {
		results = append(results, *s.projectResult(&quizzes[i]))
	}
	return results, nil
}

// projectResult builds the outward view. Passed is always recomputed from
// the score; the stored flag is never trusted.
func (s *QuizService) projectResult(quiz *model.Quiz) *QuizResult {
	message := MsgAwaitingReview
	if quiz.Controlled {
		message = MsgReviewed
	}

	result := &QuizResult{
		QuizID:     quiz.ID,
		UserID:     quiz.UserID,
		PositionID: quiz.PositionID,
		TotalScore: quiz.TotalScore,
		Passed:     quiz.TotalScore >= PassThreshold,
		Controlled: quiz.Controlled,
		FinishedAt: quiz.FinishedAt,
		Message:    message,
		Answers:    make([]AnswerResult, 0, len(quiz.Answers)),
	}

	for i := range quiz.Answers {
		ua := &quiz.Answers[i]
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
			if ua.PracticalStatus == "" && ua.PracticalScore != nil {
				ar.PracticalStatus = PracticalStatusForScore(*ua.PracticalScore)
			}
		}
		result.Answers = append(result.Answers, ar)
	}
	return result
}

func toQuestionView(q model.Question) QuestionView {
	view := QuestionView{
		ID:              q.ID,
		Text:            q.Text,
		QuestionType:    q.QuestionType,
		DifficultyLevel: q.DifficultyLevel,
		Points:          q.Points,
		Attachment:      q.Attachment,
	}
	if q.QuestionType == model.Theoretical {
		view.Choices = make([]ChoiceView, 0, len(q.Choices))
		for _, c := range q.Choices {
			view.Choices = append(view.Choices, ChoiceView{ID: c.ID, Text: c.Text})
		}
	}
	return view
}
