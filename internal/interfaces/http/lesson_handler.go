package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lingua-launchpad/academy-server/internal/lesson"
)

type LessonHandler struct {
	lessonUseCase lesson.LessonUseCase
}

func NewLessonHandler(LessonUseCase lesson.LessonUseCase) *LessonHandler {
	handler := &LessonHandler{LessonUseCase}
	return handler
}

// HandleGetLessons list lessons, optionally narrowed to one language
func (lh *LessonHandler) HandleGetLessons(c echo.Context) (err error) {
	language := c.QueryParam("language")

	lessons, err := lh.lessonUseCase.GetLessons(c.Request().Context(), language)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lessons)
}

// HandleGetLesson ...
func (lh *LessonHandler) HandleGetLesson(c echo.Context) (err error) {
	id := c.Param("id")

	model, err := lh.lessonUseCase.GetLesson(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, lesson.ErrLessonNotFound) {
			return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
		}
		return err
	}
	return c.JSON(http.StatusOK, model)
}

// HandleCompleteLesson mark a lesson completed, repeating the call is a
// no-op
func (lh *LessonHandler) HandleCompleteLesson(c echo.Context) (err error) {
	id := c.Param("id")

	if err := lh.lessonUseCase.CompleteLesson(c.Request().Context(), id); err != nil {
		if errors.Is(err, lesson.ErrLessonNotFound) {
			return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
		}
		if errors.Is(err, lesson.ErrLessonLocked) {
			return c.JSON(http.StatusConflict, NewRESTStandardError(http.StatusConflict, err.Error()))
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
