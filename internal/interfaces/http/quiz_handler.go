package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lingua-launchpad/academy-server/internal/infrastructure/validate"
	"github.com/lingua-launchpad/academy-server/internal/quiz"
)

type QuizHandler struct {
	quizUseCase quiz.QuizUseCase
	validator   validate.Validator
}

func NewQuizHandler(QuizUseCase quiz.QuizUseCase, Validator validate.Validator) *QuizHandler {
	handler := &QuizHandler{QuizUseCase, Validator}
	return handler
}

// questionView question projection without the answer key
type questionView struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// quizView quiz projection served to clients, the grading fields stay
// server side
type quizView struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Language      string          `json:"language"`
	Level         string          `json:"level"`
	QuestionCount int             `json:"question_count"`
	Difficulty    quiz.Difficulty `json:"difficulty"`
	Completed     bool            `json:"completed"`
	Score         *int            `json:"score,omitempty"`
	Locked        bool            `json:"locked"`
	Questions     []questionView  `json:"questions"`
}

func newQuizView(model *quiz.QuizModel) *quizView {
	questions := make([]questionView, len(model.Questions))
	for i, q := range model.Questions {
		questions[i] = questionView{ID: q.ID, Text: q.Text, Options: q.Options}
	}
	return &quizView{
		ID:            model.ID,
		Title:         model.Title,
		Description:   model.Description,
		Language:      model.Language,
		Level:         model.Level,
		QuestionCount: model.QuestionCount,
		Difficulty:    model.Difficulty,
		Completed:     model.Completed,
		Score:         model.Score,
		Locked:        model.Locked,
		Questions:     questions,
	}
}

// HandleGetQuizzes list quizzes, optionally narrowed to one language
func (qh *QuizHandler) HandleGetQuizzes(c echo.Context) (err error) {
	language := c.QueryParam("language")

	quizzes, err := qh.quizUseCase.GetQuizzes(c.Request().Context(), language)
	if err != nil {
		return err
	}
	views := make([]*quizView, len(quizzes))
	for i, model := range quizzes {
		views[i] = newQuizView(model)
	}
	return c.JSON(http.StatusOK, views)
}

// HandleGetQuiz ...
func (qh *QuizHandler) HandleGetQuiz(c echo.Context) (err error) {
	id := c.Param("id")

	model, err := qh.quizUseCase.GetQuiz(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, quiz.ErrQuizNotFound) {
			return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
		}
		return err
	}
	return c.JSON(http.StatusOK, newQuizView(model))
}

type attemptPost struct {
	Answers []int `json:"answers"`
}

// HandleSubmitAttempt grade a full attempt, every submission counts even
// for an already completed quiz
func (qh *QuizHandler) HandleSubmitAttempt(c echo.Context) (err error) {
	id := c.Param("id")

	post := new(attemptPost)
	if err = c.Bind(post); err != nil {
		internal := err.(*echo.HTTPError).Internal
		return c.JSON(http.StatusUnprocessableEntity,
			NewRESTStandardError(http.StatusUnprocessableEntity, internal.Error()))
	}
	if post.Answers == nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest,
			"Failed to validate fields", []*validate.FieldError{validate.NewFieldError("answers", "answers is a required field")}))
	}

	result, err := qh.quizUseCase.SubmitAttempt(c.Request().Context(), id, post.Answers)
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrQuizNotFound):
			return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
		case errors.Is(err, quiz.ErrQuizLocked), errors.Is(err, quiz.ErrNoQuestions):
			return c.JSON(http.StatusConflict, NewRESTStandardError(http.StatusConflict, err.Error()))
		case errors.Is(err, quiz.ErrAnswerCount), errors.Is(err, quiz.ErrOptionOutOfRange):
			return c.JSON(http.StatusBadRequest, NewRESTStandardError(http.StatusBadRequest, err.Error()))
		}
		return err
	}
	return c.JSON(http.StatusOK, result)
}
