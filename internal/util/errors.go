package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPositionNotFound   = errors.New("position not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrChoiceReferenced   = errors.New("choice is referenced by submitted answers")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAnswerNotInQuiz    = errors.New("answer does not belong to this quiz")
	ErrNotPracticalAnswer = errors.New("only practical answers can be reviewed")
	ErrEmptyReview        = errors.New("review payload is empty")
	ErrScoreOutOfRange    = errors.New("practical score must be between 0 and 10")
	ErrChoicesOnPractical = errors.New("practical questions cannot have choices")
	ErrAlreadySubmitted   = errors.New("assignment already submitted")
)
