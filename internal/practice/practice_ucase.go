package practice

import (
	"context"

	"go.elastic.co/apm"
)

// PracticeUseCaseImpl ...
type PracticeUseCaseImpl struct {
	PracticeRepository PracticeRepository
}

var _ PracticeUseCase = &PracticeUseCaseImpl{}

// NewPracticeUseCase ...
func NewPracticeUseCase(
	PracticeRepository PracticeRepository,
) *PracticeUseCaseImpl {
	return &PracticeUseCaseImpl{PracticeRepository}
}

// GetPractices list practice activities with optional language and type filters
func (pu *PracticeUseCaseImpl) GetPractices(ctx context.Context, language string, practiceType PracticeType) ([]*PracticeModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "PracticeUseCaseImpl.GetPractices", "service")
	defer apmSpan.End()

	return pu.PracticeRepository.GetPractices(ctx, language, practiceType)
}

// GetPractice fetch a single practice activity
func (pu *PracticeUseCaseImpl) GetPractice(ctx context.Context, id string) (*PracticeModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "PracticeUseCaseImpl.GetPractice", "service")
	defer apmSpan.End()

	return pu.PracticeRepository.GetPracticeByID(ctx, id)
}

// CompletePractice record a finished practice session
func (pu *PracticeUseCaseImpl) CompletePractice(ctx context.Context, id string) error {
	apmSpan, _ := apm.StartSpan(ctx, "PracticeUseCaseImpl.CompletePractice", "service")
	defer apmSpan.End()

	return pu.PracticeRepository.CompletePractice(ctx, id)
}
