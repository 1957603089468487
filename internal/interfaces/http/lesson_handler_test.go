package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/lingua-launchpad/academy-server/internal/lesson"
	"github.com/lingua-launchpad/academy-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLessonHandlerFixture() *LessonHandler {
	dataStore := store.NewMemoryStore(store.DefaultSeed())
	return NewLessonHandler(lesson.NewLessonUseCase(dataStore))
}

func lessonRequest(method, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestHandleCompleteLessonStatuses(t *testing.T) {
	handler := newLessonHandlerFixture()

	c, rec := lessonRequest(http.MethodPost, "lesson-8")
	require.NoError(t, handler.HandleCompleteLesson(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// repeating is fine
	c, rec = lessonRequest(http.MethodPost, "lesson-8")
	require.NoError(t, handler.HandleCompleteLesson(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = lessonRequest(http.MethodPost, "lesson-404")
	require.NoError(t, handler.HandleCompleteLesson(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = lessonRequest(http.MethodPost, "lesson-9")
	require.NoError(t, handler.HandleCompleteLesson(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleGetLessonIncludesSections(t *testing.T) {
	handler := newLessonHandlerFixture()

	c, rec := lessonRequest(http.MethodGet, "lesson-1")
	require.NoError(t, handler.HandleGetLesson(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"type":"vocabulary"`)
	assert.Contains(t, body, `"type":"interactive"`)
}
