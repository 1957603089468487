package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attempt struct {
	id    string
	score int
}

type fakeQuizRepo struct {
	attempts []attempt
}

func (r *fakeQuizRepo) GetQuizzes(ctx context.Context, language string) ([]*QuizModel, error) {
	return nil, nil
}

func (r *fakeQuizRepo) GetQuizByID(ctx context.Context, id string) (*QuizModel, error) {
	return nil, nil
}

func (r *fakeQuizRepo) CompleteQuiz(ctx context.Context, id string, score int) error {
	r.attempts = append(r.attempts, attempt{id, score})
	return nil
}

// testQuiz builds a quiz where option 1 is always correct
func testQuiz(questions int) *QuizModel {
	q := &QuizModel{
		ID:            "quiz-1",
		Title:         "Greetings",
		Language:      "spanish",
		QuestionCount: questions,
	}
	for i := 0; i < questions; i++ {
		q.Questions = append(q.Questions, QuestionModel{
			ID:            "q" + string(rune('1'+i)),
			Text:          "pick the right one",
			Options:       []string{"wrong", "right", "also wrong"},
			CorrectOption: 1,
		})
	}
	return q
}

func TestScoreRounding(t *testing.T) {
	cases := []struct {
		correct int
		total   int
		want    int
	}{
		{0, 4, 0},
		{4, 4, 100},
		{3, 5, 60},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{1, 2, 50},
		{5, 6, 83},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Score(c.correct, c.total), "Score(%d, %d)", c.correct, c.total)
	}
}

func TestAssessmentFullRun(t *testing.T) {
	repo := &fakeQuizRepo{}
	a, err := NewAssessment(testQuiz(3), repo)
	require.NoError(t, err)
	ctx := context.Background()

	correct, err := a.Answer(1)
	require.NoError(t, err)
	assert.True(t, correct)
	completed, err := a.Advance(ctx)
	require.NoError(t, err)
	assert.False(t, completed)

	correct, err = a.Answer(0)
	require.NoError(t, err)
	assert.False(t, correct)
	_, err = a.Advance(ctx)
	require.NoError(t, err)

	_, err = a.Answer(1)
	require.NoError(t, err)
	completed, err = a.Advance(ctx)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.True(t, a.Done())

	score, ok := a.FinalScore()
	assert.True(t, ok)
	assert.Equal(t, 67, score)
	assert.Equal(t, []attempt{{"quiz-1", 67}}, repo.attempts)
}

func TestAssessmentSingleAnswerPerQuestion(t *testing.T) {
	a, err := NewAssessment(testQuiz(2), &fakeQuizRepo{})
	require.NoError(t, err)

	_, err = a.Answer(0)
	require.NoError(t, err)
	_, err = a.Answer(1)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	// the first answer stands
	assert.Equal(t, 0, a.CorrectCount())
}

func TestAssessmentAdvanceRequiresAnswer(t *testing.T) {
	a, err := NewAssessment(testQuiz(2), &fakeQuizRepo{})
	require.NoError(t, err)

	_, err = a.Advance(context.Background())
	assert.ErrorIs(t, err, ErrNotAnswered)
	assert.Equal(t, 0, a.Index())
}

func TestAssessmentAnswerOutOfRange(t *testing.T) {
	a, err := NewAssessment(testQuiz(1), &fakeQuizRepo{})
	require.NoError(t, err)

	_, err = a.Answer(3)
	assert.ErrorIs(t, err, ErrOptionOutOfRange)
	_, err = a.Answer(-1)
	assert.ErrorIs(t, err, ErrOptionOutOfRange)
}

func TestAssessmentRetreatIsReviewOnly(t *testing.T) {
	a, err := NewAssessment(testQuiz(3), &fakeQuizRepo{})
	require.NoError(t, err)
	ctx := context.Background()

	a.Retreat()
	assert.Equal(t, 0, a.Index())

	_, err = a.Answer(1)
	require.NoError(t, err)
	_, err = a.Advance(ctx)
	require.NoError(t, err)

	a.Retreat()
	assert.Equal(t, 0, a.Index())
	assert.True(t, a.Revealed())
	_, err = a.Answer(0)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.Equal(t, 1, a.CorrectCount())
}

func TestAssessmentRestart(t *testing.T) {
	repo := &fakeQuizRepo{}
	a, err := NewAssessment(testQuiz(2), repo)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = a.Answer(1)
	require.NoError(t, err)
	_, err = a.Advance(ctx)
	require.NoError(t, err)
	_, err = a.Answer(1)
	require.NoError(t, err)
	completed, err := a.Advance(ctx)
	require.NoError(t, err)
	assert.True(t, completed)

	a.Restart()
	assert.Equal(t, 0, a.Index())
	assert.False(t, a.Done())
	assert.False(t, a.Revealed())
	assert.Equal(t, 0, a.CorrectCount())
	_, ok := a.FinalScore()
	assert.False(t, ok)

	// retaking writes a second completion
	_, err = a.Answer(0)
	require.NoError(t, err)
	_, err = a.Advance(ctx)
	require.NoError(t, err)
	_, err = a.Answer(0)
	require.NoError(t, err)
	_, err = a.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, []attempt{{"quiz-1", 100}, {"quiz-1", 0}}, repo.attempts)
}

func TestAssessmentLockedQuizNotStartable(t *testing.T) {
	locked := testQuiz(2)
	locked.Locked = true

	_, err := NewAssessment(locked, &fakeQuizRepo{})
	assert.ErrorIs(t, err, ErrQuizLocked)
}

func TestAssessmentEmptyQuizNotStartable(t *testing.T) {
	empty := testQuiz(0)

	_, err := NewAssessment(empty, &fakeQuizRepo{})
	assert.ErrorIs(t, err, ErrNoQuestions)
}
