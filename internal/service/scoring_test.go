package service

import (
	"devquiz_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPracticalStatusForScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Wrong answer"},
		{1, "Weak answer"},
		{3, "Weak answer"},
		{4, "Partially correct answer"},
		{7, "Partially correct answer"},
		{8, "Mostly correct answer"},
		{9, "Mostly correct answer"},
		{10, "Correct answer"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PracticalStatusForScore(tt.score), "score %d", tt.score)
	}
}

func TestScoreAnswers(t *testing.T) {
	theoretical := &model.Question{QuestionType: model.Theoretical}
	practical := &model.Question{QuestionType: model.Practical}

	yes, no := true, false
	seven := 7

	answers := []model.UserAnswer{
		{Question: theoretical, IsCorrect: &yes},
		{Question: theoretical, IsCorrect: &yes},
		{Question: theoretical, IsCorrect: &no},
		{Question: theoretical},                     // never graded
		{Question: practical, PracticalScore: &seven},
		{Question: practical},                       // pending review
	}
	assert.Equal(t, 17, scoreAnswers(answers))
	assert.Equal(t, 0, scoreAnswers(nil))
}

func TestGradeChoice(t *testing.T) {
	q := &model.Question{
		QuestionType: model.Theoretical,
		Choices: []model.Choice{
			{BaseModel: model.BaseModel{ID: 1}, IsCorrect: false},
			{BaseModel: model.BaseModel{ID: 2}, IsCorrect: true},
		},
	}

	right, wrong, foreign := uint(2), uint(1), uint(99)
	assert.True(t, gradeChoice(q, &right))
	assert.False(t, gradeChoice(q, &wrong))
	assert.False(t, gradeChoice(q, &foreign))
	assert.False(t, gradeChoice(q, nil))
}

func TestSampleByDifficulty(t *testing.T) {
	var bank []model.Question
	id := uint(0)
	add := func(level, count int) {
		for i := 0; i < count; i++ {
			id++
			bank = append(bank, model.Question{
				BaseModel:       model.BaseModel{ID: id},
				DifficultyLevel: level,
			})
		}
	}
	add(1, 5)
	add(2, 2)
	add(3, 1)

	for run := 0; run < 25; run++ {
		picked := sampleByDifficulty(bank, 2)
		assert.Len(t, picked, 5) // 2 + 2 + 1

		perLevel := make(map[int]int)
		seen := make(map[uint]bool)
		for _, q := range picked {
			perLevel[q.DifficultyLevel]++
			assert.False(t, seen[q.ID], "drawn with replacement")
			seen[q.ID] = true
		}
		assert.Equal(t, 2, perLevel[1])
		assert.Equal(t, 2, perLevel[2])
		assert.Equal(t, 1, perLevel[3])
	}
}

func TestSampleByDifficulty_Empty(t *testing.T) {
	assert.Empty(t, sampleByDifficulty(nil, 2))
}
