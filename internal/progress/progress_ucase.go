package progress

import (
	"context"

	"go.elastic.co/apm"
)

// ProgressUseCaseImpl ...
type ProgressUseCaseImpl struct {
	ProgressRepository ProgressRepository
}

var _ ProgressUseCase = &ProgressUseCaseImpl{}

// NewProgressUseCase ...
func NewProgressUseCase(
	ProgressRepository ProgressRepository,
) *ProgressUseCaseImpl {
	return &ProgressUseCaseImpl{ProgressRepository}
}

// GetLanguages list the language catalog with completion counters
func (pu *ProgressUseCaseImpl) GetLanguages(ctx context.Context) ([]*LanguageModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.GetLanguages", "service")
	defer apmSpan.End()

	return pu.ProgressRepository.GetLanguages(ctx)
}

// GetLanguage fetch a single language by id
func (pu *ProgressUseCaseImpl) GetLanguage(ctx context.Context, id string) (*LanguageModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.GetLanguage", "service")
	defer apmSpan.End()

	return pu.ProgressRepository.GetLanguageByID(ctx, id)
}

// GetUserProgress fetch a snapshot of the progress aggregate
func (pu *ProgressUseCaseImpl) GetUserProgress(ctx context.Context) (*UserProgressModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.GetUserProgress", "service")
	defer apmSpan.End()

	return pu.ProgressRepository.GetUserProgress(ctx)
}
