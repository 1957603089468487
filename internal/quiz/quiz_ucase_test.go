package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogQuizRepo struct {
	fakeQuizRepo
	quiz *QuizModel
}

func (r *catalogQuizRepo) GetQuizByID(ctx context.Context, id string) (*QuizModel, error) {
	if r.quiz != nil && r.quiz.ID == id {
		return r.quiz, nil
	}
	return nil, ErrQuizNotFound
}

func TestSubmitAttemptGradesEveryQuestion(t *testing.T) {
	repo := &catalogQuizRepo{quiz: testQuiz(3)}
	uc := NewQuizUseCase(repo)

	result, err := uc.SubmitAttempt(context.Background(), "quiz-1", []int{1, 0, 1})
	require.NoError(t, err)

	assert.Equal(t, "quiz-1", result.QuizID)
	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 67, result.Score)
	require.Len(t, result.Questions, 3)
	assert.True(t, result.Questions[0].Correct)
	assert.False(t, result.Questions[1].Correct)
	assert.Equal(t, 1, result.Questions[1].CorrectOption)
	assert.Equal(t, []attempt{{"quiz-1", 67}}, repo.attempts)
}

func TestSubmitAttemptAnswerCountMismatch(t *testing.T) {
	repo := &catalogQuizRepo{quiz: testQuiz(3)}
	uc := NewQuizUseCase(repo)

	_, err := uc.SubmitAttempt(context.Background(), "quiz-1", []int{1})
	assert.ErrorIs(t, err, ErrAnswerCount)
	assert.Empty(t, repo.attempts)
}

func TestSubmitAttemptUnknownQuiz(t *testing.T) {
	uc := NewQuizUseCase(&catalogQuizRepo{})

	_, err := uc.SubmitAttempt(context.Background(), "quiz-404", []int{1})
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestSubmitAttemptRepeatedAttemptsAllStored(t *testing.T) {
	repo := &catalogQuizRepo{quiz: testQuiz(2)}
	uc := NewQuizUseCase(repo)
	ctx := context.Background()

	_, err := uc.SubmitAttempt(ctx, "quiz-1", []int{1, 1})
	require.NoError(t, err)
	_, err = uc.SubmitAttempt(ctx, "quiz-1", []int{0, 0})
	require.NoError(t, err)

	assert.Equal(t, []attempt{{"quiz-1", 100}, {"quiz-1", 0}}, repo.attempts)
}
