package service

import (
	"devquiz_backend/internal/model"
	"devquiz_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAssignmentStore struct {
	bank        *fakeStore
	assignments map[uint]*model.Assignment
	nextID      uint
	nextAnswer  uint
}

func newAssignmentTestService() (*AssignmentService, *fakeAssignmentStore, *fakeStore) {
	bank := newFakeStore()
	store := &fakeAssignmentStore{
		bank:        bank,
		assignments: make(map[uint]*model.Assignment),
	}
	return NewAssignmentService(store, bank), store, bank
}

func (f *fakeAssignmentStore) Create(assignment *model.Assignment) error {
	f.nextID++
	assignment.ID = f.nextID
	if assignment.Answer != nil {
		f.nextAnswer++
		assignment.Answer.ID = f.nextAnswer
		assignmentID := assignment.ID
		assignment.Answer.AssignmentID = &assignmentID
	}
	stored := *assignment
	f.assignments[assignment.ID] = &stored
	return nil
}

func (f *fakeAssignmentStore) FindByID(id uint) (*model.Assignment, error) {
	assignment, ok := f.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	loaded := *assignment
	if assignment.Answer != nil {
		answer := *assignment.Answer
		if q, ok := f.bank.bank[answer.QuestionID]; ok {
			question := q
			answer.Question = &question
		}
		loaded.Answer = &answer
	}
	return &loaded, nil
}

func (f *fakeAssignmentStore) Save(assignment *model.Assignment) error {
	stored := *assignment
	if assignment.Answer != nil {
		answer := *assignment.Answer
		answer.Question = nil
		stored.Answer = &answer
	}
	f.assignments[assignment.ID] = &stored
	return nil
}

func (f *fakeAssignmentStore) FindByUserID(userID uint) ([]model.Assignment, error) {
	var out []model.Assignment
	for id, a := range f.assignments {
		if a.UserID != userID {
			continue
		}
		loaded, _ := f.FindByID(id)
		out = append(out, *loaded)
	}
	return out, nil
}

func TestCreateAssignment_PinnedQuestion(t *testing.T) {
	svc, _, bank := newAssignmentTestService()
	q := bank.addQuestion(1, model.Practical, 2)

	result, err := svc.CreateAssignment(CreateAssignmentReq{
		UserID:     7,
		PositionID: 1,
		Title:      "Refactoring exercise",
		QuestionID: q,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Answer)
	assert.Equal(t, q, result.Answer.QuestionID)
	assert.Equal(t, MsgAwaitingReview, result.Message)
	require.NotNil(t, result.Question)
	assert.Equal(t, model.Practical, result.Question.QuestionType)
}

func TestCreateAssignment_RandomPracticalDraw(t *testing.T) {
	svc, _, bank := newAssignmentTestService()
	practical := map[uint]bool{
		bank.addQuestion(1, model.Practical, 1): true,
		bank.addQuestion(1, model.Practical, 3): true,
	}
	// theoretical questions are never drawn for assignments
	bank.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a", IsCorrect: true})

	for run := 0; run < 10; run++ {
		result, err := svc.CreateAssignment(CreateAssignmentReq{
			UserID:     7,
			PositionID: 1,
			Title:      "Exercise",
		})
		require.NoError(t, err)
		require.NotNil(t, result.Answer)
		assert.True(t, practical[result.Answer.QuestionID])
	}
}

func TestCreateAssignment_NoPracticalQuestions(t *testing.T) {
	svc, _, bank := newAssignmentTestService()
	bank.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a"})

	_, err := svc.CreateAssignment(CreateAssignmentReq{
		UserID:     7,
		PositionID: 1,
		Title:      "Exercise",
	})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestSubmitAssignment_OnceOnly(t *testing.T) {
	svc, _, bank := newAssignmentTestService()
	q := bank.addQuestion(1, model.Practical, 1)

	created, err := svc.CreateAssignment(CreateAssignmentReq{
		UserID:     7,
		PositionID: 1,
		Title:      "Exercise",
		QuestionID: q,
	})
	require.NoError(t, err)

	text := "solution"
	result, err := svc.SubmitAssignment(created.AssignmentID, SubmitAssignmentReq{AnswerText: &text})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Controlled)

	_, err = svc.SubmitAssignment(created.AssignmentID, SubmitAssignmentReq{AnswerText: &text})
	assert.ErrorIs(t, err, util.ErrAlreadySubmitted)
}

func TestSubmitAssignment_TheoreticalGradesImmediately(t *testing.T) {
	svc, _, bank := newAssignmentTestService()
	q := bank.addQuestion(1, model.Theoretical, 1,
		model.Choice{Text: "right", IsCorrect: true},
		model.Choice{Text: "wrong"},
	)

	created, err := svc.CreateAssignment(CreateAssignmentReq{
		UserID:     7,
		PositionID: 1,
		Title:      "Exercise",
		QuestionID: q,
	})
	require.NoError(t, err)

	var choiceID uint
	for _, c := range bank.bank[q].Choices {
		if c.IsCorrect {
			choiceID = c.ID
		}
	}
	require.NotZero(t, choiceID)

	result, err := svc.SubmitAssignment(created.AssignmentID, SubmitAssignmentReq{ChoiceID: &choiceID})
	require.NoError(t, err)

	require.NotNil(t, result.Answer.IsCorrect)
	assert.True(t, *result.Answer.IsCorrect)
	assert.Equal(t, TheoreticalPointValue, result.Score)
}

func TestReviewAssignment(t *testing.T) {
	svc, _, bank := newAssignmentTestService()
	q := bank.addQuestion(1, model.Practical, 1)

	created, err := svc.CreateAssignment(CreateAssignmentReq{
		UserID:     7,
		PositionID: 1,
		Title:      "Exercise",
		QuestionID: q,
	})
	require.NoError(t, err)

	text := "solution"
	_, err = svc.SubmitAssignment(created.AssignmentID, SubmitAssignmentReq{AnswerText: &text})
	require.NoError(t, err)

	result, err := svc.ReviewAssignment(created.AssignmentID, 9, "close, missed one edge case")
	require.NoError(t, err)

	assert.Equal(t, 9, result.Score)
	assert.True(t, result.Controlled)
	assert.Equal(t, MsgReviewed, result.Message)
	assert.Equal(t, "close, missed one edge case", result.Comment)
	require.NotNil(t, result.Answer.PracticalScore)
	assert.Equal(t, "Mostly correct answer", result.Answer.PracticalStatus)
}

func TestReviewAssignment_ScoreOutOfRange(t *testing.T) {
	svc, store, bank := newAssignmentTestService()
	q := bank.addQuestion(1, model.Practical, 1)

	created, err := svc.CreateAssignment(CreateAssignmentReq{
		UserID:     7,
		PositionID: 1,
		Title:      "Exercise",
		QuestionID: q,
	})
	require.NoError(t, err)

	for _, score := range []int{-1, 11} {
		_, err := svc.ReviewAssignment(created.AssignmentID, score, "")
		assert.ErrorIs(t, err, util.ErrScoreOutOfRange, "score %d", score)
	}
	assert.False(t, store.assignments[created.AssignmentID].Controlled)
}

func TestReviewAssignment_TheoreticalRejected(t *testing.T) {
	svc, _, bank := newAssignmentTestService()
	q := bank.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a", IsCorrect: true})

	created, err := svc.CreateAssignment(CreateAssignmentReq{
		UserID:     7,
		PositionID: 1,
		Title:      "Exercise",
		QuestionID: q,
	})
	require.NoError(t, err)

	_, err = svc.ReviewAssignment(created.AssignmentID, 5, "")
	assert.ErrorIs(t, err, util.ErrNotPracticalAnswer)
}

func TestAssignment_NotFound(t *testing.T) {
	svc, _, _ := newAssignmentTestService()

	_, err := svc.GetAssignmentByID(42)
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)

	_, err = svc.SubmitAssignment(42, SubmitAssignmentReq{})
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)

	_, err = svc.ReviewAssignment(42, 5, "")
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)
}

func TestGetAssignmentsByUserID(t *testing.T) {
	svc, _, bank := newAssignmentTestService()
	q := bank.addQuestion(1, model.Practical, 1)

	for _, userID := range []uint{7, 7, 8} {
		_, err := svc.CreateAssignment(CreateAssignmentReq{
			UserID:     userID,
			PositionID: 1,
			Title:      "Exercise",
			QuestionID: q,
		})
		require.NoError(t, err)
	}

	results, err := svc.GetAssignmentsByUserID(7)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
