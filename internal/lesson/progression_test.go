package lesson

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLessonRepo struct {
	completions []string
	err         error
}

func (r *fakeLessonRepo) GetLessons(ctx context.Context, language string) ([]*LessonModel, error) {
	return nil, nil
}

func (r *fakeLessonRepo) GetLessonByID(ctx context.Context, id string) (*LessonModel, error) {
	return nil, nil
}

func (r *fakeLessonRepo) CompleteLesson(ctx context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	r.completions = append(r.completions, id)
	return nil
}

func testLesson() *LessonModel {
	return &LessonModel{
		ID:       "lesson-1",
		Title:    "Introduction",
		Language: "spanish",
		Sections: []Section{
			&TextSection{ID: "section-1", Title: "Overview", Content: "Some text"},
			&InteractiveSection{
				ID:      "section-2",
				Title:   "Practice",
				Prompt:  "Pick one",
				Options: []string{"a", "b", "c"},
			},
			&GrammarSection{ID: "section-3", Title: "Rules", Content: "Some rules"},
		},
	}
}

func TestProgressionCompletesExactlyOnce(t *testing.T) {
	repo := &fakeLessonRepo{}
	p, err := NewProgression(testLesson(), repo)
	require.NoError(t, err)

	ctx := context.Background()
	completed, err := p.Advance(ctx)
	require.NoError(t, err)
	assert.False(t, completed)

	completed, err = p.Advance(ctx)
	require.NoError(t, err)
	assert.False(t, completed)

	completed, err = p.Advance(ctx)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.True(t, p.Done())
	assert.Equal(t, []string{"lesson-1"}, repo.completions)

	_, err = p.Advance(ctx)
	assert.ErrorIs(t, err, ErrLessonFinished)
	assert.Equal(t, 1, len(repo.completions))
}

func TestProgressionRetreatStopsAtFirstSection(t *testing.T) {
	p, err := NewProgression(testLesson(), &fakeLessonRepo{})
	require.NoError(t, err)

	p.Retreat()
	assert.Equal(t, 0, p.Index())

	_, err = p.Advance(context.Background())
	require.NoError(t, err)
	p.Retreat()
	assert.Equal(t, 0, p.Index())
}

func TestProgressionChoice(t *testing.T) {
	p, err := NewProgression(testLesson(), &fakeLessonRepo{})
	require.NoError(t, err)

	// first section is not interactive
	assert.ErrorIs(t, p.Choose(0), ErrNotInteractive)

	_, err = p.Advance(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, p.Choose(3), ErrChoiceOutOfRange)
	assert.ErrorIs(t, p.Choose(-1), ErrChoiceOutOfRange)
	require.NoError(t, p.Choose(1))
	chosen, ok := p.Chosen()
	assert.True(t, ok)
	assert.Equal(t, 1, chosen)
}

func TestProgressionChoiceResetsOnNavigation(t *testing.T) {
	p, err := NewProgression(testLesson(), &fakeLessonRepo{})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = p.Advance(ctx)
	require.NoError(t, err)
	require.NoError(t, p.Choose(2))

	_, err = p.Advance(ctx)
	require.NoError(t, err)
	_, ok := p.Chosen()
	assert.False(t, ok)

	p.Retreat()
	_, ok = p.Chosen()
	assert.False(t, ok)
}

func TestProgressionLockedLessonNotStartable(t *testing.T) {
	locked := testLesson()
	locked.Locked = true

	_, err := NewProgression(locked, &fakeLessonRepo{})
	assert.ErrorIs(t, err, ErrLessonLocked)
}

func TestProgressionEmptyLessonNotStartable(t *testing.T) {
	empty := testLesson()
	empty.Sections = nil

	_, err := NewProgression(empty, &fakeLessonRepo{})
	assert.ErrorIs(t, err, ErrNoSections)
}

func TestProgressionCompletionFailureKeepsState(t *testing.T) {
	repo := &fakeLessonRepo{err: errors.New("write failed")}
	p, err := NewProgression(testLesson(), repo)
	require.NoError(t, err)
	ctx := context.Background()

	p.Advance(ctx)
	p.Advance(ctx)
	_, err = p.Advance(ctx)
	require.Error(t, err)
	assert.False(t, p.Done())
	assert.Equal(t, 2, p.Index())

	// the write recovers, the retry succeeds
	repo.err = nil
	completed, err := p.Advance(ctx)
	require.NoError(t, err)
	assert.True(t, completed)
}
