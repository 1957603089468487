package progress

import (
	"context"
	"errors"
	"time"
)

// ErrLanguageNotFound unknown language identifier
var ErrLanguageNotFound = errors.New("No such language")

// LanguageModel tracks per-language completion counters. Progress is a
// derived percentage and is recomputed whenever a lesson of the language
// completes.
type LanguageModel struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Level            string `json:"level"`
	Progress         int    `json:"progress"`
	LessonsCompleted int    `json:"lessons_completed"`
	TotalLessons     int    `json:"total_lessons"`
}

// CompletionPercent derive the completion percentage from the lesson
// counters, integer rounding half-up
func (l *LanguageModel) CompletionPercent() int {
	if l.TotalLessons == 0 {
		return 0
	}
	return (200*l.LessonsCompleted + l.TotalLessons) / (2 * l.TotalLessons)
}

// ActivityKind discriminates recent activity entries
type ActivityKind string

const (
	ActivityLesson   ActivityKind = "lesson"
	ActivityQuiz     ActivityKind = "quiz"
	ActivityPractice ActivityKind = "practice"
)

// ActivityEntry one completion event in the recent activity feed. Score is
// only set for quiz completions.
type ActivityEntry struct {
	Kind  ActivityKind `json:"kind"`
	Title string       `json:"title"`
	Date  time.Time    `json:"date"`
	Score *int         `json:"score,omitempty"`
}

// UserProgressModel the per-user progress aggregate. Languages are held by
// reference: counter updates on a language are visible through this list.
// Streak fields are externally maintained, nothing in this process
// recomputes them.
type UserProgressModel struct {
	Languages              []*LanguageModel `json:"languages"`
	CurrentStreak          int              `json:"current_streak"`
	LongestStreak          int              `json:"longest_streak"`
	StreakDays             []time.Time      `json:"streak_days"`
	TotalLessonsCompleted  int              `json:"total_lessons_completed"`
	TotalQuizzesCompleted  int              `json:"total_quizzes_completed"`
	TotalPracticeCompleted int              `json:"total_practice_completed"`
	RecentActivity         []ActivityEntry  `json:"recent_activity"`
}

type ProgressRepository interface {
	GetLanguages(ctx context.Context) ([]*LanguageModel, error)
	GetLanguageByID(ctx context.Context, id string) (*LanguageModel, error)
	GetUserProgress(ctx context.Context) (*UserProgressModel, error)
}

type ProgressUseCase interface {
	GetLanguages(ctx context.Context) ([]*LanguageModel, error)
	GetLanguage(ctx context.Context, id string) (*LanguageModel, error)
	GetUserProgress(ctx context.Context) (*UserProgressModel, error)
}
