package http

import (
	"github.com/labstack/echo/v4"
	infra "github.com/lingua-launchpad/academy-server/internal/infrastructure"
	"github.com/lingua-launchpad/academy-server/internal/progress"
)

func v1Endpoint(
	websocket *infra.Websocket,
	broker *progress.ActivityBroker,
	UserHandler *UserHandler,
	ProgressHandler *ProgressHandler,
	LessonHandler *LessonHandler,
	QuizHandler *QuizHandler,
	PracticeHandler *PracticeHandler,
	jwtMiddleware echo.MiddlewareFunc,
	refreshMiddleware echo.MiddlewareFunc,
	requestIDMiddleware echo.MiddlewareFunc,
	traceLoggerMiddleware echo.MiddlewareFunc,
) *endpoint {
	return &endpoint{
		apiVersion:  "api/v1",
		middlewares: []echo.MiddlewareFunc{requestIDMiddleware, traceLoggerMiddleware},
		groups: []*apiGroup{
			{
				prefix: "/user",
				routes: []*route{
					{"POST", "/login", UserHandler.HandleSignIn, nil},
					{"PUT", "/sign-out", UserHandler.HandleSignOut, nil},
					{"POST", "/sign-up", UserHandler.HandleSignUp, nil},
					{"GET", "/exists", UserHandler.HandleUserExists, nil},
				},
			},
			{
				prefix:      "/language",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware, refreshMiddleware},
				routes: []*route{
					{"GET", "/", ProgressHandler.HandleGetLanguages, nil},
					{"GET", "/:id", ProgressHandler.HandleGetLanguage, nil},
				},
			},
			{
				prefix:      "/lesson",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware, refreshMiddleware},
				routes: []*route{
					{"GET", "/", LessonHandler.HandleGetLessons, nil},
					{"GET", "/:id", LessonHandler.HandleGetLesson, nil},
					{"POST", "/:id/complete", LessonHandler.HandleCompleteLesson, nil},
				},
			},
			{
				prefix:      "/quiz",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware, refreshMiddleware},
				routes: []*route{
					{"GET", "/", QuizHandler.HandleGetQuizzes, nil},
					{"GET", "/:id", QuizHandler.HandleGetQuiz, nil},
					{"POST", "/:id/attempt", QuizHandler.HandleSubmitAttempt, nil},
				},
			},
			{
				prefix:      "/practice",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware, refreshMiddleware},
				routes: []*route{
					{"GET", "/", PracticeHandler.HandleGetPractices, nil},
					{"GET", "/:id", PracticeHandler.HandleGetPractice, nil},
					{"POST", "/:id/complete", PracticeHandler.HandleCompletePractice, nil},
				},
			},
			{
				prefix:      "/progress",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware, refreshMiddleware},
				routes: []*route{
					{"GET", "/", ProgressHandler.HandleGetUserProgress, nil},
				},
			},
			{
				prefix: "/ws",
				routes: []*route{
					{"GET", "/activity", websocket.WithHeartbeat(HandleActivityFeed(broker)), nil},
				},
			},
		},
	}
}
