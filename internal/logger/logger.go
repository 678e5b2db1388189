package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	log  *slog.Logger
	once sync.Once
)

// Init инициализирует глобальный логгер.
// env: "development" даёт текстовый вывод с уровнем debug, всё остальное - JSON.
func Init(env string) {
	InitWithWriter(env, os.Stdout)
}

// InitWithWriter is Init with an explicit sink; tests use it to capture output.
func InitWithWriter(env string, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	var handler slog.Handler
	switch env {
	case "development":
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	case "test":
		opts.Level = slog.LevelWarn
		opts.AddSource = false
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger возвращает глобальный логгер
func GetLogger() *slog.Logger {
	once.Do(func() {
		if log == nil {
			Init("development")
		}
	})
	return log
}

// ============================================
// Convenience функции
// ============================================

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal логирует ошибку и завершает процесс
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With создает новый логгер с дополнительными полями
// Пример: logger.With("job_id", id).Info("job approved")
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}
