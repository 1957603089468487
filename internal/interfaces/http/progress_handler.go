package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lingua-launchpad/academy-server/internal/progress"
)

type ProgressHandler struct {
	progressUseCase progress.ProgressUseCase
}

func NewProgressHandler(ProgressUseCase progress.ProgressUseCase) *ProgressHandler {
	handler := &ProgressHandler{ProgressUseCase}
	return handler
}

// HandleGetLanguages ...
func (ph *ProgressHandler) HandleGetLanguages(c echo.Context) (err error) {
	languages, err := ph.progressUseCase.GetLanguages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, languages)
}

// HandleGetLanguage ...
func (ph *ProgressHandler) HandleGetLanguage(c echo.Context) (err error) {
	id := c.Param("id")

	model, err := ph.progressUseCase.GetLanguage(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, progress.ErrLanguageNotFound) {
			return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
		}
		return err
	}
	return c.JSON(http.StatusOK, model)
}

// HandleGetUserProgress ...
func (ph *ProgressHandler) HandleGetUserProgress(c echo.Context) (err error) {
	snapshot, err := ph.progressUseCase.GetUserProgress(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snapshot)
}
