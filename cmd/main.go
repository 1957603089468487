package main

import (
	"log"

	infra "github.com/lingua-launchpad/academy-server/internal/infrastructure"
	"github.com/lingua-launchpad/academy-server/internal/infrastructure/driver"
	"github.com/lingua-launchpad/academy-server/internal/infrastructure/logging"
	"github.com/lingua-launchpad/academy-server/internal/infrastructure/uuid"
	ihttp "github.com/lingua-launchpad/academy-server/internal/interfaces/http"
	"github.com/lingua-launchpad/academy-server/internal/lesson"
	"github.com/lingua-launchpad/academy-server/internal/practice"
	"github.com/lingua-launchpad/academy-server/internal/progress"
	"github.com/lingua-launchpad/academy-server/internal/quiz"
	"github.com/lingua-launchpad/academy-server/internal/store"
	"github.com/lingua-launchpad/academy-server/internal/user"
	"go.uber.org/zap"
)

func main() {
	log.SetFlags(log.Lshortfile | log.Ldate | log.Ltime)
	option, err := infra.InitConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(&logging.Config{
		FilePath: option.Logging.FilePath,
		Level:    option.Logging.Level,
		AppID:    option.AppID,
		Env:      option.Env,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %s\n", err)
	}
	logger = logger.With(
		zap.String("service.id", option.AppID),
	)
	defer logger.Sync()

	kvStore, err := driver.GetKVStore(&driver.KVConfig{
		Driver:   option.KVStore.Driver,
		Host:     option.KVStore.Host,
		Port:     option.KVStore.Port,
		Password: option.KVStore.Password,
	})
	if err != nil {
		log.Fatalf("Failed to create kv store: %s\n", err)
	}
	logger.Debug("Create kv store", zap.String("kv.driver", option.KVStore.Driver))

	broker := progress.NewActivityBroker()
	dataStore := store.NewMemoryStore(store.DefaultSeed(),
		store.WithLatency(option.Store.Latency),
		store.WithBroker(broker),
	)
	logger.Debug("Seed in-memory data store", zap.Duration("store.latency", option.Store.Latency))

	UUIDGenerator := uuid.NewNanoIDGenerator(option.Security.IDLength)
	UserRepo := user.NewUserRepository(UUIDGenerator)
	UserUseCase := user.NewUserUseCase(UserRepo)

	ProgressUseCase := progress.NewProgressUseCase(dataStore)
	LessonUseCase := lesson.NewLessonUseCase(dataStore)
	QuizUseCase := quiz.NewQuizUseCase(dataStore)
	PracticeUseCase := practice.NewPracticeUseCase(dataStore)

	ihttp.Serve(kvStore, option, broker,
		UserUseCase, UserRepo,
		ProgressUseCase, LessonUseCase, QuizUseCase, PracticeUseCase,
		logger)
}
