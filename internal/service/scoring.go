package service

import (
	"devquiz_backend/internal/model"
	"math/rand/v2"
)

// Scoring rules shared by the quiz and assignment lifecycles.
const (
	TheoreticalPointValue = 5
	PassThreshold         = 65
	MaxPracticalScore     = 10

	// sampling quotas per difficulty level
	TheoreticalPerLevel = 2
	PracticalPerLevel   = 1
)

const (
	MsgReviewed       = "Your quiz has been reviewed."
	MsgAwaitingReview = "Please wait for our developers to review your quiz."
)

// PracticalStatusForScore maps an admin-assigned 0-10 score to its label.
func PracticalStatusForScore(score int) string {
	switch {
	case score <= 0:
		return "Wrong answer"
	case score <= 3:
		return "Weak answer"
	case score <= 7:
		return "Partially correct answer"
	case score <= 9:
		return "Mostly correct answer"
	default:
		return "Correct answer"
	}
}

// scoreAnswers recomputes a total from scratch: 5 points per correct
// theoretical answer plus the sum of practical scores, unset counting as 0.
func scoreAnswers(answers []model.UserAnswer) int {
	total := 0
	for i := range answers {
		a := &answers[i]
		if a.Question == nil {
			continue
		}
		switch a.Question.QuestionType {
		case model.Theoretical:
			if a.IsCorrect != nil && *a.IsCorrect {
				total += TheoreticalPointValue
			}
		case model.Practical:
			if a.PracticalScore != nil {
				total += *a.PracticalScore
			}
		}
	}
	return total
}

// gradeChoice checks the submitted choice against the question's choices.
// No choice, or a choice that is not one of the question's, grades false.
func gradeChoice(question *model.Question, choiceID *uint) bool {
	if choiceID == nil {
		return false
	}
	for _, c := range question.Choices {
		if c.ID == *choiceID {
			return c.IsCorrect
		}
	}
	return false
}

// sampleByDifficulty draws up to perLevel questions uniformly at random,
// without replacement, from each difficulty bucket. Buckets with fewer
// candidates contribute all of them. Output order carries no guarantee.
func sampleByDifficulty(questions []model.Question, perLevel int) []model.Question {
	buckets := make(map[int][]model.Question)
	for _, q := range questions {
		buckets[q.DifficultyLevel] = append(buckets[q.DifficultyLevel], q)
	}

	var picked []model.Question
	for _, bucket := range buckets {
		rand.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
		n := perLevel
		if len(bucket) < n {
			n = len(bucket)
		}
		picked = append(picked, bucket[:n]...)
	}
	return picked
}
