package lesson

import "context"

const noChoice = -1

// Progression steps a learner through a lesson's ordered sections. The
// index only ever moves one step at a time; the final Advance issues the
// completion write through the repository and terminates the progression.
type Progression struct {
	lesson *LessonModel
	repo   LessonRepository

	index  int
	choice int
	done   bool
}

// NewProgression create a progression over the given lesson. Locked lessons
// and lessons without sections are not startable.
func NewProgression(l *LessonModel, repo LessonRepository) (*Progression, error) {
	if l.Locked {
		return nil, ErrLessonLocked
	}
	if len(l.Sections) == 0 {
		return nil, ErrNoSections
	}
	return &Progression{
		lesson: l,
		repo:   repo,
		choice: noChoice,
	}, nil
}

// Lesson the lesson being traversed
func (p *Progression) Lesson() *LessonModel { return p.lesson }

// Index current section index, 0-based
func (p *Progression) Index() int { return p.index }

// Section the current section
func (p *Progression) Section() Section { return p.lesson.Sections[p.index] }

// Done reports whether the final advance has happened
func (p *Progression) Done() bool { return p.done }

// Choose record the learner's option pick on the current interactive
// section. The pick affects presentation only, no correctness rule exists
// at the content level.
func (p *Progression) Choose(option int) error {
	if p.done {
		return ErrLessonFinished
	}
	section, ok := p.Section().(*InteractiveSection)
	if !ok {
		return ErrNotInteractive
	}
	if option < 0 || option >= len(section.Options) {
		return ErrChoiceOutOfRange
	}
	p.choice = option
	return nil
}

// Chosen the recorded pick for the current section, or false when the
// learner has not interacted since arriving at it
func (p *Progression) Chosen() (int, bool) {
	if p.choice == noChoice {
		return 0, false
	}
	return p.choice, true
}

// Advance move to the next section. On the last section it instead
// completes the lesson through the repository and reports completion. The
// interaction flag resets whenever the section changes.
func (p *Progression) Advance(ctx context.Context) (completed bool, err error) {
	if p.done {
		return false, ErrLessonFinished
	}
	if p.index == len(p.lesson.Sections)-1 {
		if err := p.repo.CompleteLesson(ctx, p.lesson.ID); err != nil {
			return false, err
		}
		p.done = true
		return true, nil
	}
	p.index++
	p.choice = noChoice
	return false, nil
}

// Retreat move to the previous section, no-op at the first one
func (p *Progression) Retreat() {
	if p.done || p.index == 0 {
		return
	}
	p.index--
	p.choice = noChoice
}
