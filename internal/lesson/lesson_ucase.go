package lesson

import (
	"context"

	"go.elastic.co/apm"
)

// LessonUseCaseImpl ...
type LessonUseCaseImpl struct {
	LessonRepository LessonRepository
}

var _ LessonUseCase = &LessonUseCaseImpl{}

// NewLessonUseCase ...
func NewLessonUseCase(
	LessonRepository LessonRepository,
) *LessonUseCaseImpl {
	return &LessonUseCaseImpl{LessonRepository}
}

// GetLessons list lessons, optionally filtered by language id
func (lu *LessonUseCaseImpl) GetLessons(ctx context.Context, language string) ([]*LessonModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "LessonUseCaseImpl.GetLessons", "service")
	defer apmSpan.End()

	return lu.LessonRepository.GetLessons(ctx, language)
}

// GetLesson fetch a single lesson
func (lu *LessonUseCaseImpl) GetLesson(ctx context.Context, id string) (*LessonModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "LessonUseCaseImpl.GetLesson", "service")
	defer apmSpan.End()

	return lu.LessonRepository.GetLessonByID(ctx, id)
}

// StartLesson fetch the lesson and open a progression over its sections
func (lu *LessonUseCaseImpl) StartLesson(ctx context.Context, id string) (*Progression, error) {
	apmSpan, _ := apm.StartSpan(ctx, "LessonUseCaseImpl.StartLesson", "service")
	defer apmSpan.End()

	l, err := lu.LessonRepository.GetLessonByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewProgression(l, lu.LessonRepository)
}

// CompleteLesson mark the lesson complete
func (lu *LessonUseCaseImpl) CompleteLesson(ctx context.Context, id string) error {
	apmSpan, _ := apm.StartSpan(ctx, "LessonUseCaseImpl.CompleteLesson", "service")
	defer apmSpan.End()

	return lu.LessonRepository.CompleteLesson(ctx, id)
}
