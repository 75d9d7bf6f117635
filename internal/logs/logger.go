package logs

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultFileMaxSizeMB  = 10
	defaultFileMaxBackups = 5
)

// EncodingType определяет формат вывода логов.
type EncodingType string

// LevelType определяет уровень логирования.
type LevelType string

// EncodingTypeConsole Форматирование для консоли.
// EncodingTypeJSON Форматирование в JSON.
const (
	EncodingTypeConsole EncodingType = "console"
	EncodingTypeJSON    EncodingType = "json"
)

// LevelTypeDebug Отладочный уровень.
// LevelTypeInfo Информационный уровень.
// LevelTypeWarning Уровень предупреждений.
// LevelTypeError Уровень ошибок.
// LevelTypeFatal Фатальный уровень.
// LevelTypePanic Уровень паники.
const (
	LevelTypeDebug   LevelType = "debug"
	LevelTypeInfo    LevelType = "info"
	LevelTypeWarning LevelType = "warn"
	LevelTypeError   LevelType = "error"
	LevelTypeFatal   LevelType = "fatal"
	LevelTypePanic   LevelType = "panic"
)

// LoggerOptions настройки логгера.
type LoggerOptions struct {
	Level            LevelType      // Уровень логирования
	Encoding         EncodingType   // Формат вывода
	OutputPaths      []string       // Пути вывода логов
	ErrorOutputPaths []string       // Пути вывода ошибок
	InitialFields    map[string]any // Начальные поля для каждой записи
	FilePath         string         // Файл с ротацией (lumberjack). Пустая строка - не писать в файл
	FileMaxSizeMB    int            // Максимальный размер файла до ротации
	FileMaxBackups   int            // Сколько ротированных файлов хранить
}

// WithLevel задает уровень логирования.
func WithLevel(level LevelType) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		if level != "" {
			o.Level = level
		}
	}
}

// WithFile дублирует логи в файл path с ротацией.
func WithFile(path string) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		o.FilePath = path
	}
}

// New создает новый логгер с указанными настройками.
//
// Параметры:
//   - opts: функции для настройки логгера
//
// Возвращает:
//   - *zap.Logger: настроенный логгер
//   - error: ошибка создания логгера
func New(opts ...func(*LoggerOptions)) (*zap.Logger, error) {
	isProduction := os.Getenv("GIN_MODE") == "release"

	var encoding = EncodingTypeConsole
	var level = LevelTypeDebug
	if isProduction {
		encoding = EncodingTypeJSON
		level = LevelTypeInfo
	}

	options := LoggerOptions{
		Level:            level,
		Encoding:         encoding,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		FileMaxSizeMB:    defaultFileMaxSizeMB,
		FileMaxBackups:   defaultFileMaxBackups,
	}

	for _, opt := range opts {
		opt(&options)
	}

	lvl, errLvl := zap.ParseAtomicLevel(string(options.Level))
	if errLvl != nil {
		return nil, fmt.Errorf("parse level: %s", errLvl.Error())
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:          "msg",
		LevelKey:            "level",
		TimeKey:             "ts",
		NameKey:             "logger",
		CallerKey:           "caller",
		FunctionKey:         zapcore.OmitKey,
		StacktraceKey:       "stacktrace",
		SkipLineEnding:      false,
		LineEnding:          zapcore.DefaultLineEnding,
		EncodeLevel:         zapcore.LowercaseLevelEncoder,
		EncodeTime:          zapcore.ISO8601TimeEncoder,
		EncodeDuration:      zapcore.StringDurationEncoder,
		EncodeCaller:        zapcore.ShortCallerEncoder,
		EncodeName:          nil,
		NewReflectedEncoder: nil,
		ConsoleSeparator:    "",
	}

	conf := zap.Config{
		Level:             lvl,
		Development:       !isProduction,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          string(options.Encoding),
		EncoderConfig:     encoderConfig,
		OutputPaths:       options.OutputPaths,
		ErrorOutputPaths:  options.ErrorOutputPaths,
		InitialFields:     options.InitialFields,
	}

	buildOpts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if options.FilePath != "" {
		// в файл всегда пишем json, его потом читают машины
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   options.FilePath,
				MaxSize:    options.FileMaxSizeMB,
				MaxBackups: options.FileMaxBackups,
			}),
			lvl,
		)
		buildOpts = append(buildOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore)
		}))
	}

	log, err := conf.Build(buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("build logger: %s", err.Error())
	}
	return log, nil
}

// MustNew создает новый логгер с указанными настройками.
// В случае ошибки вызывает panic.
//
// Параметры:
//   - opts: функции для настройки логгера
//
// Возвращает:
//   - *zap.Logger: настроенный логгер
func MustNew(opts ...func(*LoggerOptions)) *zap.Logger {
	log, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return log
}
