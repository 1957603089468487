package lesson

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrLessonNotFound unknown lesson identifier
var ErrLessonNotFound = errors.New("No such lesson")

// ErrLessonLocked the lesson is locked and cannot be started or completed
var ErrLessonLocked = errors.New("Lesson is locked")

// ErrNoSections the lesson has no sections to step through
var ErrNoSections = errors.New("Lesson has no sections")

// ErrLessonFinished navigation attempted after the final advance
var ErrLessonFinished = errors.New("Lesson is already finished")

// ErrChoiceOutOfRange selected option index is outside the section options
var ErrChoiceOutOfRange = errors.New("Choice index out of range")

// ErrNotInteractive choice recorded on a section without options
var ErrNotInteractive = errors.New("Section is not interactive")

// SectionKind section content discriminator
type SectionKind string

const (
	SectionText        SectionKind = "text"
	SectionVocabulary  SectionKind = "vocabulary"
	SectionExample     SectionKind = "example"
	SectionGrammar     SectionKind = "grammar"
	SectionInteractive SectionKind = "interactive"
)

// Section one ordered unit of lesson content. Each kind carries its own
// typed payload, consumers switch on the concrete type.
type Section interface {
	Kind() SectionKind
	Heading() string
}

// TextSection free-form prose content
type TextSection struct {
	ID      string
	Title   string
	Content string
}

func (s *TextSection) Kind() SectionKind { return SectionText }
func (s *TextSection) Heading() string   { return s.Title }

func (s *TextSection) MarshalJSON() ([]byte, error) {
	return marshalSection(s.ID, s.Title, SectionText, s.Content)
}

// VocabularyItem one word with its translation and an optional usage example
type VocabularyItem struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Example     string `json:"example,omitempty"`
}

// VocabularySection a word list
type VocabularySection struct {
	ID    string
	Title string
	Items []VocabularyItem
}

func (s *VocabularySection) Kind() SectionKind { return SectionVocabulary }
func (s *VocabularySection) Heading() string   { return s.Title }

func (s *VocabularySection) MarshalJSON() ([]byte, error) {
	return marshalSection(s.ID, s.Title, SectionVocabulary, s.Items)
}

// ExampleSection a list of example sentences
type ExampleSection struct {
	ID       string
	Title    string
	Examples []string
}

func (s *ExampleSection) Kind() SectionKind { return SectionExample }
func (s *ExampleSection) Heading() string   { return s.Title }

func (s *ExampleSection) MarshalJSON() ([]byte, error) {
	return marshalSection(s.ID, s.Title, SectionExample, s.Examples)
}

// GrammarSection a grammar note
type GrammarSection struct {
	ID      string
	Title   string
	Content string
}

func (s *GrammarSection) Kind() SectionKind { return SectionGrammar }
func (s *GrammarSection) Heading() string   { return s.Title }

func (s *GrammarSection) MarshalJSON() ([]byte, error) {
	return marshalSection(s.ID, s.Title, SectionGrammar, s.Content)
}

// InteractiveSection a prompt with selectable options. The content schema
// carries no correct-answer field, a choice is recorded but never graded.
type InteractiveSection struct {
	ID      string
	Title   string
	Prompt  string
	Options []string
}

func (s *InteractiveSection) Kind() SectionKind { return SectionInteractive }
func (s *InteractiveSection) Heading() string   { return s.Title }

func (s *InteractiveSection) MarshalJSON() ([]byte, error) {
	content := append([]string{s.Prompt}, s.Options...)
	return marshalSection(s.ID, s.Title, SectionInteractive, content)
}

func marshalSection(id, title string, kind SectionKind, content interface{}) ([]byte, error) {
	return json.Marshal(struct {
		ID      string      `json:"id"`
		Title   string      `json:"title"`
		Type    SectionKind `json:"type"`
		Content interface{} `json:"content"`
	}{id, title, kind, content})
}

// LessonModel one lesson of the catalog with its ordered sections
type LessonModel struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Level       string    `json:"level"`
	Duration    int       `json:"duration"`
	Completed   bool      `json:"completed"`
	Locked      bool      `json:"locked"`
	Sections    []Section `json:"sections"`
}

type LessonRepository interface {
	GetLessons(ctx context.Context, language string) ([]*LessonModel, error)
	GetLessonByID(ctx context.Context, id string) (*LessonModel, error)
	// CompleteLesson marks the lesson complete and folds the completion
	// into the progress aggregate. Idempotent: a second call for the same
	// lesson changes nothing.
	CompleteLesson(ctx context.Context, id string) error
}

type LessonUseCase interface {
	GetLessons(ctx context.Context, language string) ([]*LessonModel, error)
	GetLesson(ctx context.Context, id string) (*LessonModel, error)
	StartLesson(ctx context.Context, id string) (*Progression, error)
	CompleteLesson(ctx context.Context, id string) error
}
