package service

import (
	"devquiz_backend/internal/model"
	"devquiz_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStore backs QuizStore and QuestionBank with maps so the lifecycle
// can be exercised without a database.
type fakeStore struct {
	bank       map[uint]model.Question
	quizzes    map[uint]*model.Quiz
	nextItem   uint
	nextQuiz   uint
	nextAnswer uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bank:    make(map[uint]model.Question),
		quizzes: make(map[uint]*model.Quiz),
	}
}

func (f *fakeStore) addQuestion(positionID uint, qt model.QuestionType, level int, choices ...model.Choice) uint {
	f.nextItem++
	q := model.Question{
		BaseModel:       model.BaseModel{ID: f.nextItem},
		PositionID:      positionID,
		Text:            "q",
		QuestionType:    qt,
		DifficultyLevel: level,
	}
	for i := range choices {
		f.nextItem++
		choices[i].ID = f.nextItem
		choices[i].QuestionID = q.ID
	}
	q.Choices = choices
	f.bank[q.ID] = q
	return q.ID
}

func (f *fakeStore) ListByPosition(positionID uint, questionType model.QuestionType, difficulty int) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.bank {
		if q.PositionID != positionID {
			continue
		}
		if questionType != "" && q.QuestionType != questionType {
			continue
		}
		if difficulty > 0 && q.DifficultyLevel != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeStore) Create(quiz *model.Quiz) error {
	f.nextQuiz++
	quiz.ID = f.nextQuiz
	for i := range quiz.Answers {
		f.nextAnswer++
		quiz.Answers[i].ID = f.nextAnswer
		quizID := quiz.ID
		quiz.Answers[i].QuizID = &quizID
	}
	stored := *quiz
	stored.Answers = append([]model.UserAnswer(nil), quiz.Answers...)
	f.quizzes[quiz.ID] = &stored
	return nil
}

func (f *fakeStore) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	loaded := *quiz
	loaded.Answers = append([]model.UserAnswer(nil), quiz.Answers...)
	for i := range loaded.Answers {
		if q, ok := f.bank[loaded.Answers[i].QuestionID]; ok {
			question := q
			loaded.Answers[i].Question = &question
		}
	}
	return &loaded, nil
}

func (f *fakeStore) Save(quiz *model.Quiz) error {
	stored := *quiz
	stored.Answers = append([]model.UserAnswer(nil), quiz.Answers...)
	for i := range stored.Answers {
		stored.Answers[i].Question = nil
	}
	f.quizzes[quiz.ID] = &stored
	return nil
}

func (f *fakeStore) FindByUserID(userID uint) ([]model.Quiz, error) {
	var out []model.Quiz
	for id, quiz := range f.quizzes {
		if quiz.UserID != userID {
			continue
		}
		loaded, _ := f.FindByID(id)
		out = append(out, *loaded)
	}
	return out, nil
}

func newTestService() (*QuizService, *fakeStore) {
	store := newFakeStore()
	return NewQuizService(store, store), store
}

func TestCreateQuiz_StratifiedSamplingBounds(t *testing.T) {
	svc, store := newTestService()

	// level 1: five theoretical, three practical; level 2: one theoretical
	for i := 0; i < 5; i++ {
		store.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a", IsCorrect: true})
	}
	for i := 0; i < 3; i++ {
		store.addQuestion(1, model.Practical, 1)
	}
	lonely := store.addQuestion(1, model.Theoretical, 2, model.Choice{Text: "a"})

	// a different position's bank must never leak in
	store.addQuestion(2, model.Theoretical, 1, model.Choice{Text: "x"})
	store.addQuestion(2, model.Practical, 1)

	for run := 0; run < 25; run++ {
		view, err := svc.CreateQuiz(1, 7)
		require.NoError(t, err)

		// 2 from theoretical level 1, all of theoretical level 2 (one),
		// 1 from practical level 1
		require.Len(t, view.Questions, 4)

		seen := make(map[uint]bool)
		theoretical, practical := 0, 0
		for _, q := range view.Questions {
			require.False(t, seen[q.ID], "question drawn twice")
			seen[q.ID] = true

			banked, ok := store.bank[q.ID]
			require.True(t, ok)
			assert.Equal(t, uint(1), banked.PositionID)

			switch q.QuestionType {
			case model.Theoretical:
				theoretical++
			case model.Practical:
				practical++
			}
		}
		assert.Equal(t, 3, theoretical)
		assert.Equal(t, 1, practical)
		assert.True(t, seen[lonely], "undersized bucket must contribute everything it has")
	}
}

func TestCreateQuiz_PersistsPlaceholders(t *testing.T) {
	svc, store := newTestService()
	store.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a", IsCorrect: true})
	store.addQuestion(1, model.Practical, 1)

	view, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)

	quiz := store.quizzes[view.QuizID]
	require.NotNil(t, quiz)
	assert.Equal(t, uint(7), quiz.UserID)
	assert.False(t, quiz.StartedAt.IsZero())
	assert.Nil(t, quiz.FinishedAt)
	assert.Equal(t, 0, quiz.TotalScore)

	require.Len(t, quiz.Answers, len(view.Questions))
	for _, ua := range quiz.Answers {
		assert.NotZero(t, ua.QuestionID)
		assert.Nil(t, ua.ChoiceID)
		assert.Nil(t, ua.IsCorrect)
		assert.Nil(t, ua.AnswerText)
		assert.Nil(t, ua.PracticalScore)
	}
}

func TestCreateQuiz_UnknownPositionYieldsEmptyQuiz(t *testing.T) {
	svc, store := newTestService()

	view, err := svc.CreateQuiz(99, 7)
	require.NoError(t, err)
	assert.Empty(t, view.Questions)
	assert.Empty(t, store.quizzes[view.QuizID].Answers)
}

func TestCreateQuiz_NoDeduplicationAcrossCalls(t *testing.T) {
	svc, store := newTestService()
	store.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a"})

	first, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)
	second, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)

	assert.NotEqual(t, first.QuizID, second.QuizID)
	assert.Len(t, store.quizzes, 2)
}

func TestSubmitQuiz_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SubmitQuiz(42, nil)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

// The worked scenario: two theoretical questions at level 1, one practical
// at level 1. Correct choice on the first, wrong on the second, free text
// on the third scores 5 before review and 13 after an 8-point review.
func TestQuizLifecycle_EndToEnd(t *testing.T) {
	svc, store := newTestService()

	q1 := store.addQuestion(1, model.Theoretical, 1,
		model.Choice{Text: "right", IsCorrect: true},
		model.Choice{Text: "wrong"},
	)
	q2 := store.addQuestion(1, model.Theoretical, 1,
		model.Choice{Text: "right", IsCorrect: true},
		model.Choice{Text: "wrong"},
	)
	q3 := store.addQuestion(1, model.Practical, 1)

	view, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)
	require.Len(t, view.Questions, 3)

	correctChoice := func(id uint) *uint {
		for _, c := range store.bank[id].Choices {
			if c.IsCorrect {
				choiceID := c.ID
				return &choiceID
			}
		}
		return nil
	}
	wrongChoice := func(id uint) *uint {
		for _, c := range store.bank[id].Choices {
			if !c.IsCorrect {
				choiceID := c.ID
				return &choiceID
			}
		}
		return nil
	}

	text := "func main() {}"
	result, err := svc.SubmitQuiz(view.QuizID, []SubmittedAnswer{
		{QuestionID: q1, ChoiceID: correctChoice(q1)},
		{QuestionID: q2, ChoiceID: wrongChoice(q2)},
		{QuestionID: q3, AnswerText: &text},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalScore)
	assert.False(t, result.Passed)
	assert.False(t, result.Controlled)
	assert.Equal(t, MsgAwaitingReview, result.Message)
	require.NotNil(t, result.FinishedAt)

	var practicalAnswerID uint
	for _, a := range result.Answers {
		switch a.QuestionID {
		case q1:
			require.NotNil(t, a.IsCorrect)
			assert.True(t, *a.IsCorrect)
		case q2:
			require.NotNil(t, a.IsCorrect)
			assert.False(t, *a.IsCorrect)
		case q3:
			assert.Nil(t, a.PracticalScore)
			practicalAnswerID = a.UserAnswerID
		}
	}
	require.NotZero(t, practicalAnswerID)

	reviewed, err := svc.ReviewPracticalAnswers(view.QuizID, []PracticalReview{
		{UserAnswerID: practicalAnswerID, Score: 8},
	})
	require.NoError(t, err)

	assert.Equal(t, 13, reviewed.TotalScore)
	assert.True(t, reviewed.Controlled)
	assert.Equal(t, MsgReviewed, reviewed.Message)
	for _, a := range reviewed.Answers {
		if a.UserAnswerID == practicalAnswerID {
			require.NotNil(t, a.PracticalScore)
			assert.Equal(t, 8, *a.PracticalScore)
			assert.Equal(t, "Mostly correct answer", a.PracticalStatus)
		}
	}
}

func TestSubmitQuiz_UnansweredPenalty(t *testing.T) {
	svc, store := newTestService()
	q1 := store.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a", IsCorrect: true})
	q2 := store.addQuestion(1, model.Practical, 1)

	view, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)

	result, err := svc.SubmitQuiz(view.QuizID, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalScore)
	for _, a := range result.Answers {
		switch a.QuestionID {
		case q1:
			require.NotNil(t, a.IsCorrect)
			assert.False(t, *a.IsCorrect)
		case q2:
			require.NotNil(t, a.PracticalScore)
			assert.Equal(t, 0, *a.PracticalScore)
			assert.Equal(t, "Wrong answer", a.PracticalStatus)
		}
	}
}

func TestSubmitQuiz_UnknownChoiceGradesFalse(t *testing.T) {
	svc, store := newTestService()
	q1 := store.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a", IsCorrect: true})

	view, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)

	bogus := uint(9999)
	result, err := svc.SubmitQuiz(view.QuizID, []SubmittedAnswer{
		{QuestionID: q1, ChoiceID: &bogus},
	})
	require.NoError(t, err)

	require.Len(t, result.Answers, 1)
	require.NotNil(t, result.Answers[0].IsCorrect)
	assert.False(t, *result.Answers[0].IsCorrect)
	assert.Equal(t, 0, result.TotalScore)
}

func TestReview_RejectsTheoreticalTarget(t *testing.T) {
	svc, store := newTestService()
	q1 := store.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a", IsCorrect: true})
	store.addQuestion(1, model.Practical, 1)

	view, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)

	quiz := store.quizzes[view.QuizID]
	var theoreticalAnswerID uint
	for _, ua := range quiz.Answers {
		if ua.QuestionID == q1 {
			theoreticalAnswerID = ua.ID
		}
	}
	require.NotZero(t, theoreticalAnswerID)

	_, err = svc.ReviewPracticalAnswers(view.QuizID, []PracticalReview{
		{UserAnswerID: theoreticalAnswerID, Score: 5},
	})
	assert.ErrorIs(t, err, util.ErrNotPracticalAnswer)

	// nothing may have been committed
	assert.False(t, store.quizzes[view.QuizID].Controlled)
	for _, ua := range store.quizzes[view.QuizID].Answers {
		assert.Nil(t, ua.PracticalScore)
	}
}

func TestReview_RejectsForeignAnswer(t *testing.T) {
	svc, store := newTestService()
	store.addQuestion(1, model.Practical, 1)

	first, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)
	second, err := svc.CreateQuiz(1, 8)
	require.NoError(t, err)

	foreign := store.quizzes[second.QuizID].Answers[0].ID
	_, err = svc.ReviewPracticalAnswers(first.QuizID, []PracticalReview{
		{UserAnswerID: foreign, Score: 5},
	})
	assert.ErrorIs(t, err, util.ErrAnswerNotInQuiz)
}

func TestReview_ScoreOutOfRange(t *testing.T) {
	svc, store := newTestService()
	store.addQuestion(1, model.Practical, 1)

	view, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)
	answerID := store.quizzes[view.QuizID].Answers[0].ID

	for _, score := range []int{-1, 11} {
		_, err := svc.ReviewPracticalAnswers(view.QuizID, []PracticalReview{
			{UserAnswerID: answerID, Score: score},
		})
		assert.ErrorIs(t, err, util.ErrScoreOutOfRange, "score %d", score)
	}

	// rejected batches commit nothing
	assert.False(t, store.quizzes[view.QuizID].Controlled)
	assert.Nil(t, store.quizzes[view.QuizID].Answers[0].PracticalScore)
}

func TestReview_EmptyPayload(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.ReviewPracticalAnswers(1, nil)
	assert.ErrorIs(t, err, util.ErrEmptyReview)
}

// Review closes the quiz even when only a subset of practical answers was
// scored. Deliberately kept from the original workflow.
func TestReview_PartialBatchStillControls(t *testing.T) {
	svc, store := newTestService()
	store.addQuestion(1, model.Practical, 1)
	store.addQuestion(1, model.Practical, 2)

	view, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)
	require.Len(t, view.Questions, 2)

	one := store.quizzes[view.QuizID].Answers[0].ID
	reviewed, err := svc.ReviewPracticalAnswers(view.QuizID, []PracticalReview{
		{UserAnswerID: one, Score: 10},
	})
	require.NoError(t, err)

	assert.True(t, reviewed.Controlled)
	assert.Equal(t, 10, reviewed.TotalScore)
}

func TestResultView_RecomputesPassed(t *testing.T) {
	svc, store := newTestService()
	store.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a", IsCorrect: true})

	view, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)

	// a stale stored flag must not leak into the projection
	stored := store.quizzes[view.QuizID]
	stored.TotalScore = 80
	stored.Passed = false

	result, err := svc.GetQuizByID(view.QuizID)
	require.NoError(t, err)
	assert.True(t, result.Passed)

	stored.TotalScore = 64
	stored.Passed = true
	result, err = svc.GetQuizByID(view.QuizID)
	require.NoError(t, err)
	assert.False(t, result.Passed)
}

func TestGetQuizResultsByUserID(t *testing.T) {
	svc, store := newTestService()
	store.addQuestion(1, model.Theoretical, 1, model.Choice{Text: "a", IsCorrect: true})

	_, err := svc.CreateQuiz(1, 7)
	require.NoError(t, err)
	_, err = svc.CreateQuiz(1, 7)
	require.NoError(t, err)
	_, err = svc.CreateQuiz(1, 8)
	require.NoError(t, err)

	results, err := svc.GetQuizResultsByUserID(7)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, uint(7), r.UserID)
	}
}
