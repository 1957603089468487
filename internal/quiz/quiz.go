package quiz

import (
	"context"
	"errors"
)

// ErrQuizNotFound unknown quiz identifier
var ErrQuizNotFound = errors.New("No such quiz")

// ErrQuizLocked the quiz is locked and cannot be started
var ErrQuizLocked = errors.New("Quiz is locked")

// ErrNoQuestions a quiz without questions is not startable, scoring it
// would divide by zero
var ErrNoQuestions = errors.New("Quiz has no questions")

// ErrAlreadyAnswered the current question was already answered in this pass
var ErrAlreadyAnswered = errors.New("Question is already answered")

// ErrNotAnswered advancing requires the current question to be answered
var ErrNotAnswered = errors.New("Question is not answered yet")

// ErrQuizFinished operation attempted after the assessment completed
var ErrQuizFinished = errors.New("Quiz is already finished")

// ErrOptionOutOfRange selected option index is outside the question options
var ErrOptionOutOfRange = errors.New("Option index out of range")

// ErrAnswerCount an attempt must answer every question exactly once
var ErrAnswerCount = errors.New("Answer count does not match question count")

// ErrInvalidScore score must be a percentage between 0 and 100
var ErrInvalidScore = errors.New("Score out of range")

// Difficulty quiz difficulty label
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuestionModel one multiple-choice question. CorrectOption is a zero-based
// index into Options.
type QuestionModel struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuizModel one quiz of the catalog with its ordered questions. Completed
// and Score are set together by the assessment engine; retaking overwrites
// both, the last attempt wins.
type QuizModel struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Language      string          `json:"language"`
	Level         string          `json:"level"`
	QuestionCount int             `json:"question_count"`
	Difficulty    Difficulty      `json:"difficulty"`
	Completed     bool            `json:"completed"`
	Score         *int            `json:"score,omitempty"`
	Locked        bool            `json:"locked"`
	Questions     []QuestionModel `json:"questions"`
}

type QuizRepository interface {
	GetQuizzes(ctx context.Context, language string) ([]*QuizModel, error)
	GetQuizByID(ctx context.Context, id string) (*QuizModel, error)
	// CompleteQuiz stores the attempt result. Unlike lesson completion
	// this is not idempotent: every call bumps the aggregate quiz counter
	// and overwrites the stored score.
	CompleteQuiz(ctx context.Context, id string, score int) error
}

type QuizUseCase interface {
	GetQuizzes(ctx context.Context, language string) ([]*QuizModel, error)
	GetQuiz(ctx context.Context, id string) (*QuizModel, error)
	StartQuiz(ctx context.Context, id string) (*Assessment, error)
	SubmitAttempt(ctx context.Context, id string, picks []int) (*AttemptResult, error)
}

// AttemptResult outcome of a complete quiz attempt
type AttemptResult struct {
	QuizID    string           `json:"quiz_id"`
	Score     int              `json:"score"`
	Correct   int              `json:"correct"`
	Total     int              `json:"total"`
	Questions []QuestionReview `json:"questions"`
}

// QuestionReview per-question feedback returned after an attempt
type QuestionReview struct {
	ID            string `json:"id"`
	Selected      int    `json:"selected"`
	Correct       bool   `json:"correct"`
	CorrectOption int    `json:"correct_option"`
	Explanation   string `json:"explanation,omitempty"`
}
