package quiz

import (
	"context"

	"go.elastic.co/apm"
)

// QuizUseCaseImpl ...
type QuizUseCaseImpl struct {
	QuizRepository QuizRepository
}

var _ QuizUseCase = &QuizUseCaseImpl{}

// NewQuizUseCase ...
func NewQuizUseCase(
	QuizRepository QuizRepository,
) *QuizUseCaseImpl {
	return &QuizUseCaseImpl{QuizRepository}
}

// GetQuizzes list quizzes, optionally filtered by language id
func (qu *QuizUseCaseImpl) GetQuizzes(ctx context.Context, language string) ([]*QuizModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "QuizUseCaseImpl.GetQuizzes", "service")
	defer apmSpan.End()

	return qu.QuizRepository.GetQuizzes(ctx, language)
}

// GetQuiz fetch a single quiz
func (qu *QuizUseCaseImpl) GetQuiz(ctx context.Context, id string) (*QuizModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "QuizUseCaseImpl.GetQuiz", "service")
	defer apmSpan.End()

	return qu.QuizRepository.GetQuizByID(ctx, id)
}

// StartQuiz fetch the quiz and open an assessment over its questions
func (qu *QuizUseCaseImpl) StartQuiz(ctx context.Context, id string) (*Assessment, error) {
	apmSpan, _ := apm.StartSpan(ctx, "QuizUseCaseImpl.StartQuiz", "service")
	defer apmSpan.End()

	q, err := qu.QuizRepository.GetQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewAssessment(q, qu.QuizRepository)
}

// SubmitAttempt drive a full assessment with one pick per question and
// return the graded result. The attempt is only stored when every question
// was answered, a partial attempt fails before any state changes.
func (qu *QuizUseCaseImpl) SubmitAttempt(ctx context.Context, id string, picks []int) (*AttemptResult, error) {
	apmSpan, _ := apm.StartSpan(ctx, "QuizUseCaseImpl.SubmitAttempt", "service")
	defer apmSpan.End()

	q, err := qu.QuizRepository.GetQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}
	assessment, err := NewAssessment(q, qu.QuizRepository)
	if err != nil {
		return nil, err
	}
	if len(picks) != len(q.Questions) {
		return nil, ErrAnswerCount
	}
	for _, option := range picks {
		if _, err := assessment.Answer(option); err != nil {
			return nil, err
		}
		if _, err := assessment.Advance(ctx); err != nil {
			return nil, err
		}
	}

	score, _ := assessment.FinalScore()
	result := &AttemptResult{
		QuizID:  q.ID,
		Score:   score,
		Correct: assessment.CorrectCount(),
		Total:   len(q.Questions),
	}
	for i, question := range q.Questions {
		result.Questions = append(result.Questions, QuestionReview{
			ID:            question.ID,
			Selected:      picks[i],
			Correct:       picks[i] == question.CorrectOption,
			CorrectOption: question.CorrectOption,
			Explanation:   question.Explanation,
		})
	}
	return result, nil
}
