package logs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

type gormZapLogger struct {
	logger *zap.Logger
	level  gormlogger.LogLevel
}

// NewGormLogger адаптирует zap логгер под интерфейс логгера gorm.
// Уровень gorm выводится из уровня zap логгера.
func NewGormLogger(l *zap.Logger) gormlogger.Interface {
	return &gormZapLogger{
		logger: l.Named("gorm").WithOptions(zap.AddCallerSkip(3)), //nolint:mnd
		level:  toGormLogLevel(l.Level()),
	}
}

func toGormLogLevel(zapLevel zapcore.Level) gormlogger.LogLevel {
	switch zapLevel {
	case zapcore.DebugLevel, zapcore.InfoLevel:
		return gormlogger.Info
	case zapcore.WarnLevel:
		return gormlogger.Warn
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}

func (g *gormZapLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormZapLogger{
		logger: g.logger,
		level:  level,
	}
}

func (g *gormZapLogger) Info(_ context.Context, msg string, data ...any) {
	if g.level >= gormlogger.Info {
		g.logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (g *gormZapLogger) Warn(_ context.Context, msg string, data ...any) {
	if g.level >= gormlogger.Warn {
		g.logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (g *gormZapLogger) Error(_ context.Context, msg string, data ...any) {
	if g.level >= gormlogger.Error {
		g.logger.Error(fmt.Sprintf(msg, data...))
	}
}

// Trace пишет выполненный запрос. Ошибки (кроме "не найдено") идут в error,
// медленные запросы в warn, остальное в debug.
func (g *gormZapLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.Duration("duration", elapsed),
		zap.String("sql", sql),
		zap.Int64("rows", rows),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		g.logger.Error("gorm query failed", append(fields, zap.Error(err))...)
	case elapsed > slowQueryThreshold && g.level >= gormlogger.Warn:
		g.logger.Warn("gorm slow query", fields...)
	case g.level >= gormlogger.Info:
		g.logger.Debug("gorm query", fields...)
	}
}
