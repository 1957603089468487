package store

import (
	"context"
	"sync"
	"time"

	"github.com/lingua-launchpad/academy-server/internal/lesson"
	"github.com/lingua-launchpad/academy-server/internal/practice"
	"github.com/lingua-launchpad/academy-server/internal/progress"
	"github.com/lingua-launchpad/academy-server/internal/quiz"
)

// MemoryStore holds the immutable content catalogs and the single mutable
// progress aggregate. It implements every repository interface the engines
// consume. All writes are serialized behind one mutex: two concurrent
// completions for the same lesson must not double-count the aggregate
// counters. Reads hand out copies, callers never see live references.
type MemoryStore struct {
	mu sync.Mutex

	latency time.Duration
	now     func() time.Time
	broker  *progress.ActivityBroker

	languages []*progress.LanguageModel
	lessons   []*lesson.LessonModel
	quizzes   []*quiz.QuizModel
	practices []*practice.PracticeModel
	progress  *progress.UserProgressModel
}

var _ lesson.LessonRepository = (*MemoryStore)(nil)
var _ quiz.QuizRepository = (*MemoryStore)(nil)
var _ practice.PracticeRepository = (*MemoryStore)(nil)
var _ progress.ProgressRepository = (*MemoryStore)(nil)

// Option configure optional store behavior
type Option func(*MemoryStore)

// WithLatency add a fixed delay to every call, standing in for network
// round-trip time
func WithLatency(d time.Duration) Option {
	return func(s *MemoryStore) { s.latency = d }
}

// WithClock override the time source, used by tests
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

// WithBroker publish completion events to the given broker
func WithBroker(b *progress.ActivityBroker) Option {
	return func(s *MemoryStore) { s.broker = b }
}

// NewMemoryStore create a store over the given seed. The aggregate's
// language list aliases the catalog languages so counter updates are
// visible through both.
func NewMemoryStore(seed *Seed, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		now:       time.Now,
		languages: seed.Languages,
		lessons:   seed.Lessons,
		quizzes:   seed.Quizzes,
		practices: seed.Practices,
		progress:  seed.Progress,
	}
	s.progress.Languages = s.languages
	for _, o := range opts {
		o(s)
	}
	return s
}

// wait simulate the data service round trip
func (s *MemoryStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *MemoryStore) publish(entry progress.ActivityEntry) {
	if s.broker != nil {
		s.broker.Publish(entry)
	}
}

// GetLessons list lessons, filtered by language when non-empty
func (s *MemoryStore) GetLessons(ctx context.Context, language string) ([]*lesson.LessonModel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*lesson.LessonModel
	for _, l := range s.lessons {
		if language == "" || l.Language == language {
			result = append(result, cloneLesson(l))
		}
	}
	return result, nil
}

func (s *MemoryStore) GetLessonByID(ctx context.Context, id string) (*lesson.LessonModel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.findLesson(id)
	if l == nil {
		return nil, lesson.ErrLessonNotFound
	}
	return cloneLesson(l), nil
}

// CompleteLesson flip the lesson to completed and fold the completion into
// the aggregate. Idempotent: an already completed lesson changes nothing.
// All validation happens before the first mutation.
func (s *MemoryStore) CompleteLesson(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.findLesson(id)
	if l == nil {
		return lesson.ErrLessonNotFound
	}
	if l.Locked {
		return lesson.ErrLessonLocked
	}
	if l.Completed {
		return nil
	}

	l.Completed = true
	if lang := s.findLanguage(l.Language); lang != nil {
		lang.LessonsCompleted++
		lang.Progress = lang.CompletionPercent()
	}
	s.progress.TotalLessonsCompleted++

	entry := progress.ActivityEntry{
		Kind:  progress.ActivityLesson,
		Title: l.Title,
		Date:  s.now(),
	}
	s.progress.RecentActivity = progress.PushRecent(s.progress.RecentActivity, entry)
	s.publish(entry)
	return nil
}

// GetQuizzes list quizzes, filtered by language when non-empty
func (s *MemoryStore) GetQuizzes(ctx context.Context, language string) ([]*quiz.QuizModel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*quiz.QuizModel
	for _, q := range s.quizzes {
		if language == "" || q.Language == language {
			result = append(result, cloneQuiz(q))
		}
	}
	return result, nil
}

func (s *MemoryStore) GetQuizByID(ctx context.Context, id string) (*quiz.QuizModel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.findQuiz(id)
	if q == nil {
		return nil, quiz.ErrQuizNotFound
	}
	return cloneQuiz(q), nil
}

// CompleteQuiz store an attempt result. Not idempotent: every attempt bumps
// the aggregate counter and the stored score is overwritten, last attempt
// wins.
func (s *MemoryStore) CompleteQuiz(ctx context.Context, id string, score int) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.findQuiz(id)
	if q == nil {
		return quiz.ErrQuizNotFound
	}
	if score < 0 || score > 100 {
		return quiz.ErrInvalidScore
	}

	q.Completed = true
	stored := score
	q.Score = &stored
	s.progress.TotalQuizzesCompleted++

	entryScore := score
	entry := progress.ActivityEntry{
		Kind:  progress.ActivityQuiz,
		Title: q.Title,
		Date:  s.now(),
		Score: &entryScore,
	}
	s.progress.RecentActivity = progress.PushRecent(s.progress.RecentActivity, entry)
	s.publish(entry)
	return nil
}

// GetPractices list practice activities with optional language and type filters
func (s *MemoryStore) GetPractices(ctx context.Context, language string, practiceType practice.PracticeType) ([]*practice.PracticeModel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*practice.PracticeModel
	for _, p := range s.practices {
		if language != "" && p.Language != language {
			continue
		}
		if practiceType != "" && p.Type != practiceType {
			continue
		}
		clone := *p
		result = append(result, &clone)
	}
	return result, nil
}

func (s *MemoryStore) GetPracticeByID(ctx context.Context, id string) (*practice.PracticeModel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPractice(id)
	if p == nil {
		return nil, practice.ErrPracticeNotFound
	}
	clone := *p
	return &clone, nil
}

// CompletePractice record a finished practice session, counter and feed
// entry only
func (s *MemoryStore) CompletePractice(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPractice(id)
	if p == nil {
		return practice.ErrPracticeNotFound
	}

	s.progress.TotalPracticeCompleted++
	entry := progress.ActivityEntry{
		Kind:  progress.ActivityPractice,
		Title: p.Title,
		Date:  s.now(),
	}
	s.progress.RecentActivity = progress.PushRecent(s.progress.RecentActivity, entry)
	s.publish(entry)
	return nil
}

// GetLanguages list the language catalog
func (s *MemoryStore) GetLanguages(ctx context.Context) ([]*progress.LanguageModel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*progress.LanguageModel, 0, len(s.languages))
	for _, lang := range s.languages {
		clone := *lang
		result = append(result, &clone)
	}
	return result, nil
}

func (s *MemoryStore) GetLanguageByID(ctx context.Context, id string) (*progress.LanguageModel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lang := s.findLanguage(id)
	if lang == nil {
		return nil, progress.ErrLanguageNotFound
	}
	clone := *lang
	return &clone, nil
}

// GetUserProgress snapshot of the aggregate. The copy is deep, feeding it
// back into presentation code cannot mutate the store.
func (s *MemoryStore) GetUserProgress(ctx context.Context) (*progress.UserProgressModel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := &progress.UserProgressModel{
		CurrentStreak:          s.progress.CurrentStreak,
		LongestStreak:          s.progress.LongestStreak,
		StreakDays:             append([]time.Time(nil), s.progress.StreakDays...),
		TotalLessonsCompleted:  s.progress.TotalLessonsCompleted,
		TotalQuizzesCompleted:  s.progress.TotalQuizzesCompleted,
		TotalPracticeCompleted: s.progress.TotalPracticeCompleted,
	}
	for _, lang := range s.progress.Languages {
		clone := *lang
		snapshot.Languages = append(snapshot.Languages, &clone)
	}
	for _, entry := range s.progress.RecentActivity {
		clone := entry
		if entry.Score != nil {
			score := *entry.Score
			clone.Score = &score
		}
		snapshot.RecentActivity = append(snapshot.RecentActivity, clone)
	}
	return snapshot, nil
}

func (s *MemoryStore) findLesson(id string) *lesson.LessonModel {
	for _, l := range s.lessons {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (s *MemoryStore) findQuiz(id string) *quiz.QuizModel {
	for _, q := range s.quizzes {
		if q.ID == id {
			return q
		}
	}
	return nil
}

func (s *MemoryStore) findPractice(id string) *practice.PracticeModel {
	for _, p := range s.practices {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *MemoryStore) findLanguage(id string) *progress.LanguageModel {
	for _, lang := range s.languages {
		if lang.ID == id {
			return lang
		}
	}
	return nil
}

// cloneLesson copy the lesson record. Section payloads are immutable and
// shared between copies.
func cloneLesson(l *lesson.LessonModel) *lesson.LessonModel {
	clone := *l
	clone.Sections = append([]lesson.Section(nil), l.Sections...)
	return &clone
}

// cloneQuiz copy the quiz record. Question payloads are immutable and
// shared between copies.
func cloneQuiz(q *quiz.QuizModel) *quiz.QuizModel {
	clone := *q
	clone.Questions = append([]quiz.QuestionModel(nil), q.Questions...)
	if q.Score != nil {
		score := *q.Score
		clone.Score = &score
	}
	return &clone
}
