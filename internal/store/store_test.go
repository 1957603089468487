package store

import (
	"context"
	"testing"
	"time"

	"github.com/lingua-launchpad/academy-server/internal/lesson"
	"github.com/lingua-launchpad/academy-server/internal/practice"
	"github.com/lingua-launchpad/academy-server/internal/progress"
	"github.com/lingua-launchpad/academy-server/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.April, 20, 12, 0, 0, 0, time.UTC)
}

func newTestStore(opts ...Option) *MemoryStore {
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	return NewMemoryStore(DefaultSeed(), opts...)
}

func TestCompleteLessonIsIdempotent(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	before, err := s.GetUserProgress(ctx)
	require.NoError(t, err)

	require.NoError(t, s.CompleteLesson(ctx, "lesson-8"))
	require.NoError(t, s.CompleteLesson(ctx, "lesson-8"))
	require.NoError(t, s.CompleteLesson(ctx, "lesson-8"))

	after, err := s.GetUserProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalLessonsCompleted+1, after.TotalLessonsCompleted)

	model, err := s.GetLessonByID(ctx, "lesson-8")
	require.NoError(t, err)
	assert.True(t, model.Completed)
}

func TestCompleteLessonRecomputesLanguageProgress(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.CompleteLesson(ctx, "lesson-8"))

	lang, err := s.GetLanguageByID(ctx, "spanish")
	require.NoError(t, err)
	assert.Equal(t, 8, lang.LessonsCompleted)
	assert.Equal(t, 40, lang.Progress)

	// the aggregate view shows the same counters
	snapshot, err := s.GetUserProgress(ctx)
	require.NoError(t, err)
	for _, aggregated := range snapshot.Languages {
		if aggregated.ID == "spanish" {
			assert.Equal(t, 40, aggregated.Progress)
		}
	}
}

func TestCompleteLessonValidation(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	before, err := s.GetUserProgress(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, s.CompleteLesson(ctx, "lesson-404"), lesson.ErrLessonNotFound)
	assert.ErrorIs(t, s.CompleteLesson(ctx, "lesson-9"), lesson.ErrLessonLocked)

	after, err := s.GetUserProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalLessonsCompleted, after.TotalLessonsCompleted)
	assert.Equal(t, before.RecentActivity, after.RecentActivity)
}

func TestCompleteQuizCountsEveryAttempt(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	before, err := s.GetUserProgress(ctx)
	require.NoError(t, err)

	require.NoError(t, s.CompleteQuiz(ctx, "quiz-2", 60))
	require.NoError(t, s.CompleteQuiz(ctx, "quiz-2", 80))

	after, err := s.GetUserProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalQuizzesCompleted+2, after.TotalQuizzesCompleted)

	model, err := s.GetQuizByID(ctx, "quiz-2")
	require.NoError(t, err)
	assert.True(t, model.Completed)
	require.NotNil(t, model.Score)
	assert.Equal(t, 80, *model.Score)
}

func TestCompleteQuizOverwritesPriorScore(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	// quiz-1 is seeded with score 80, a worse retake still wins
	require.NoError(t, s.CompleteQuiz(ctx, "quiz-1", 40))

	model, err := s.GetQuizByID(ctx, "quiz-1")
	require.NoError(t, err)
	require.NotNil(t, model.Score)
	assert.Equal(t, 40, *model.Score)
}

func TestCompleteQuizValidation(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	before, err := s.GetUserProgress(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, s.CompleteQuiz(ctx, "quiz-404", 50), quiz.ErrQuizNotFound)
	assert.ErrorIs(t, s.CompleteQuiz(ctx, "quiz-2", -1), quiz.ErrInvalidScore)
	assert.ErrorIs(t, s.CompleteQuiz(ctx, "quiz-2", 101), quiz.ErrInvalidScore)

	after, err := s.GetUserProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalQuizzesCompleted, after.TotalQuizzesCompleted)

	model, err := s.GetQuizByID(ctx, "quiz-2")
	require.NoError(t, err)
	assert.False(t, model.Completed)
	assert.Nil(t, model.Score)
}

func TestCompletePractice(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	before, err := s.GetUserProgress(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, s.CompletePractice(ctx, "practice-404"), practice.ErrPracticeNotFound)
	require.NoError(t, s.CompletePractice(ctx, "practice-1"))
	require.NoError(t, s.CompletePractice(ctx, "practice-1"))

	after, err := s.GetUserProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalPracticeCompleted+2, after.TotalPracticeCompleted)
	assert.Equal(t, "Spanish Greeting Practice", after.RecentActivity[0].Title)
}

func TestRecentActivityCappedNewestFirst(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	ids := []string{"practice-1", "practice-2", "practice-3", "practice-4", "practice-5", "practice-6"}
	for _, id := range ids {
		require.NoError(t, s.CompletePractice(ctx, id))
	}

	snapshot, err := s.GetUserProgress(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.RecentActivity, progress.RecentActivityLimit)
	assert.Equal(t, "Spanish Writing Exercise", snapshot.RecentActivity[0].Title)
	assert.Equal(t, "Spanish Numbers Drill", snapshot.RecentActivity[4].Title)
}

func TestQuizCompletionFeedEntryCarriesScore(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.CompleteQuiz(ctx, "quiz-2", 60))

	snapshot, err := s.GetUserProgress(ctx)
	require.NoError(t, err)
	entry := snapshot.RecentActivity[0]
	assert.Equal(t, progress.ActivityQuiz, entry.Kind)
	assert.Equal(t, "Spanish Numbers Quiz", entry.Title)
	assert.Equal(t, fixedClock(), entry.Date)
	require.NotNil(t, entry.Score)
	assert.Equal(t, 60, *entry.Score)
}

func TestCompletionsPublishToBroker(t *testing.T) {
	broker := progress.NewActivityBroker()
	s := newTestStore(WithBroker(broker))
	entries, cancel := broker.Subscribe()
	defer cancel()

	require.NoError(t, s.CompleteLesson(context.Background(), "lesson-8"))

	select {
	case entry := <-entries:
		assert.Equal(t, progress.ActivityLesson, entry.Kind)
		assert.Equal(t, "Spanish Irregular Verbs", entry.Title)
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	model, err := s.GetLessonByID(ctx, "lesson-8")
	require.NoError(t, err)
	model.Completed = true
	model.Title = "scribbled"

	fresh, err := s.GetLessonByID(ctx, "lesson-8")
	require.NoError(t, err)
	assert.False(t, fresh.Completed)
	assert.Equal(t, "Spanish Irregular Verbs", fresh.Title)

	snapshot, err := s.GetUserProgress(ctx)
	require.NoError(t, err)
	snapshot.TotalLessonsCompleted = 999
	snapshot.Languages[0].Progress = 999
	snapshot.RecentActivity[0].Title = "scribbled"

	fresh2, err := s.GetUserProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, fresh2.TotalLessonsCompleted)
	assert.Equal(t, 35, fresh2.Languages[0].Progress)
	assert.Equal(t, "Weather Expressions", fresh2.RecentActivity[0].Title)
}

func TestCatalogFilters(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	lessons, err := s.GetLessons(ctx, "french")
	require.NoError(t, err)
	assert.Len(t, lessons, 3)

	quizzes, err := s.GetQuizzes(ctx, "german")
	require.NoError(t, err)
	assert.Len(t, quizzes, 1)

	speaking, err := s.GetPractices(ctx, "spanish", practice.PracticeSpeaking)
	require.NoError(t, err)
	assert.Len(t, speaking, 2)

	all, err := s.GetPractices(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 9)
}

func TestLatencyHonorsCancellation(t *testing.T) {
	s := newTestStore(WithLatency(5 * time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetLanguages(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	err = s.CompleteLesson(ctx, "lesson-8")
	assert.ErrorIs(t, err, context.Canceled)

	// the cancelled completion wrote nothing
	model, err := s.GetLessonByID(context.Background(), "lesson-8")
	require.NoError(t, err)
	assert.False(t, model.Completed)
}
