package quiz

import "context"

// Assessment steps a learner through a quiz's ordered questions. The
// machine is InProgress until the advance on the last question, which
// computes the score, writes the completion through the repository and
// moves it to Completed. Each question accepts exactly one answer per pass;
// retreating is review-only.
type Assessment struct {
	quiz *QuizModel
	repo QuizRepository

	index    int
	answers  []bool // correctness per question index
	answered []bool
	revealed bool
	done     bool
	score    int
}

// NewAssessment open an assessment over the given quiz. Locked quizzes and
// quizzes without questions are not startable.
func NewAssessment(q *QuizModel, repo QuizRepository) (*Assessment, error) {
	if q.Locked {
		return nil, ErrQuizLocked
	}
	if len(q.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Assessment{
		quiz:     q,
		repo:     repo,
		answers:  make([]bool, len(q.Questions)),
		answered: make([]bool, len(q.Questions)),
	}, nil
}

// Quiz the quiz being taken
func (a *Assessment) Quiz() *QuizModel { return a.quiz }

// Index current question index, 0-based
func (a *Assessment) Index() int { return a.index }

// Question the current question
func (a *Assessment) Question() *QuestionModel { return &a.quiz.Questions[a.index] }

// Revealed reports whether the current question's answer is shown
func (a *Assessment) Revealed() bool { return a.revealed }

// Done reports whether the assessment reached the Completed state
func (a *Assessment) Done() bool { return a.done }

// Answer record the learner's pick for the current question. A question
// accepts a single answer; a second call is rejected so the answer
// sequence holds at most one entry per index.
func (a *Assessment) Answer(option int) (correct bool, err error) {
	if a.done {
		return false, ErrQuizFinished
	}
	if a.answered[a.index] {
		return false, ErrAlreadyAnswered
	}
	question := a.Question()
	if option < 0 || option >= len(question.Options) {
		return false, ErrOptionOutOfRange
	}

	correct = option == question.CorrectOption
	a.answers[a.index] = correct
	a.answered[a.index] = true
	a.revealed = true
	return correct, nil
}

// Advance move to the next question. Requires the current question to be
// answered. On the last question it computes the final score, writes the
// completion and transitions to Completed.
func (a *Assessment) Advance(ctx context.Context) (completed bool, err error) {
	if a.done {
		return false, ErrQuizFinished
	}
	if !a.answered[a.index] {
		return false, ErrNotAnswered
	}
	if a.index == len(a.quiz.Questions)-1 {
		score := Score(a.CorrectCount(), len(a.quiz.Questions))
		if err := a.repo.CompleteQuiz(ctx, a.quiz.ID, score); err != nil {
			return false, err
		}
		a.score = score
		a.done = true
		return true, nil
	}
	a.index++
	a.revealed = a.answered[a.index]
	return false, nil
}

// Retreat move back to the previous question for review. Recorded answers
// are kept and shown; re-answering stays rejected.
func (a *Assessment) Retreat() {
	if a.done || a.index == 0 {
		return
	}
	a.index--
	a.revealed = true
}

// Restart discard all recorded answers and return to the first question.
// A completion already written stays written; finishing again overwrites
// the stored score.
func (a *Assessment) Restart() {
	a.index = 0
	a.answers = make([]bool, len(a.quiz.Questions))
	a.answered = make([]bool, len(a.quiz.Questions))
	a.revealed = false
	a.done = false
	a.score = 0
}

// CorrectCount number of correctly answered questions so far
func (a *Assessment) CorrectCount() int {
	count := 0
	for _, ok := range a.answers {
		if ok {
			count++
		}
	}
	return count
}

// FinalScore the computed score, valid once Done
func (a *Assessment) FinalScore() (int, bool) {
	if !a.done {
		return 0, false
	}
	return a.score, true
}

// Score integer percentage of correct answers, rounded half-up.
// Callers guarantee total > 0.
func Score(correct, total int) int {
	return (200*correct + total) / (2 * total)
}
