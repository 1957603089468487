package practice

import (
	"context"
	"errors"
)

// ErrPracticeNotFound unknown practice identifier
var ErrPracticeNotFound = errors.New("No such practice")

// PracticeType practice activity category
type PracticeType string

const (
	PracticeVocabulary PracticeType = "vocabulary"
	PracticeGrammar    PracticeType = "grammar"
	PracticeListening  PracticeType = "listening"
	PracticeSpeaking   PracticeType = "speaking"
	PracticeReading    PracticeType = "reading"
	PracticeWriting    PracticeType = "writing"
)

// PracticeModel one practice activity. Completion only increments the
// aggregate counter, there is no scoring.
type PracticeModel struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Language      string       `json:"language"`
	Type          PracticeType `json:"type"`
	EstimatedTime int          `json:"estimated_time"`
	Instructions  string       `json:"instructions"`
	Exercises     []string     `json:"exercises"`
}

type PracticeRepository interface {
	GetPractices(ctx context.Context, language string, practiceType PracticeType) ([]*PracticeModel, error)
	GetPracticeByID(ctx context.Context, id string) (*PracticeModel, error)
	CompletePractice(ctx context.Context, id string) error
}

type PracticeUseCase interface {
	GetPractices(ctx context.Context, language string, practiceType PracticeType) ([]*PracticeModel, error)
	GetPractice(ctx context.Context, id string) (*PracticeModel, error)
	CompletePractice(ctx context.Context, id string) error
}
