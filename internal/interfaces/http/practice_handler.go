package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lingua-launchpad/academy-server/internal/practice"
)

type PracticeHandler struct {
	practiceUseCase practice.PracticeUseCase
}

func NewPracticeHandler(PracticeUseCase practice.PracticeUseCase) *PracticeHandler {
	handler := &PracticeHandler{PracticeUseCase}
	return handler
}

// HandleGetPractices list practice activities, both filters are optional
func (ph *PracticeHandler) HandleGetPractices(c echo.Context) (err error) {
	language := c.QueryParam("language")
	practiceType := practice.PracticeType(c.QueryParam("type"))

	practices, err := ph.practiceUseCase.GetPractices(c.Request().Context(), language, practiceType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, practices)
}

// HandleGetPractice ...
func (ph *PracticeHandler) HandleGetPractice(c echo.Context) (err error) {
	id := c.Param("id")

	model, err := ph.practiceUseCase.GetPractice(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, practice.ErrPracticeNotFound) {
			return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
		}
		return err
	}
	return c.JSON(http.StatusOK, model)
}

// HandleCompletePractice record one practice session
func (ph *PracticeHandler) HandleCompletePractice(c echo.Context) (err error) {
	id := c.Param("id")

	if err := ph.practiceUseCase.CompletePractice(c.Request().Context(), id); err != nil {
		if errors.Is(err, practice.ErrPracticeNotFound) {
			return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
