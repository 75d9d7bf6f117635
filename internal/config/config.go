package config

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"io"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/fsdevblog/shortlinks/internal/db"
)

const (
	defaultServerAddress       = "localhost:8080"
	defaultRedisTTL            = 10 * time.Minute
	defaultSessionTTL          = 30 * 24 * time.Hour
	defaultClickRecordTimeout  = 2 * time.Second
	defaultMaxGenerateAttempts = 100
	defaultTLSCertFile         = "tls/cert.pem"
	defaultTLSKeyFile          = "tls/key.pem"
	generatedSecretBytes       = 32
)

type Config struct {
	// Адрес, на котором запустится сервер
	ServerAddress string
	// Базовый адрес результирующего сокращенного URL. nil - берется из запроса
	BaseURL *url.URL
	// Строка подключения к PostgreSQL
	DatabaseDSN string
	// Путь к файлу sqlite
	SQLitePath string
	// Адрес redis для кэша переадресаций. Пусто - без кэша
	RedisAddr string
	RedisTTL  time.Duration
	// Ключ подписи сессионных JWT
	SessionSecret string
	SessionTTL    time.Duration
	// Ключ шифрования заметок
	NotesKey string
	// Сгенерированы ли секреты на старте (не заданы явно)
	GeneratedSecrets bool

	EnableHTTPS bool
	TLSCertFile string
	TLSKeyFile  string

	LogLevel string
	LogFile  string

	ClickRecordTimeout  time.Duration
	MaxGenerateAttempts int
}

// envConfig значения из окружения. Указатели позволяют отличить "не задано" от нулевого значения.
type envConfig struct {
	ServerAddress       string        `env:"SERVER_ADDRESS"`
	BaseURL             *url.URL      `env:"BASE_URL"`
	DatabaseDSN         string        `env:"DATABASE_DSN"`
	SQLitePath          string        `env:"SQLITE_PATH"`
	RedisAddr           string        `env:"REDIS_ADDR"`
	RedisTTL            time.Duration `env:"REDIS_TTL"`
	SessionSecret       string        `env:"SESSION_SECRET"`
	SessionTTL          time.Duration `env:"SESSION_TTL"`
	NotesKey            string        `env:"NOTES_KEY"`
	EnableHTTPS         *bool         `env:"ENABLE_HTTPS"`
	TLSCertFile         string        `env:"TLS_CERT_FILE"`
	TLSKeyFile          string        `env:"TLS_KEY_FILE"`
	LogLevel            string        `env:"LOG_LEVEL"`
	LogFile             string        `env:"LOG_FILE"`
	ClickRecordTimeout  time.Duration `env:"CLICK_RECORD_TIMEOUT"`
	MaxGenerateAttempts int           `env:"MAX_GENERATE_ATTEMPTS"`
}

// LoadConfig собирает конфигурацию из флагов args и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
func LoadConfig(args []string) (*Config, error) {
	var envConf envConfig
	if err := env.Parse(&envConf); err != nil {
		return nil, errors.Wrap(err, "parse ENV config error")
	}

	flagsConf, err := loadFlags(args)
	if err != nil {
		return nil, errors.Wrap(err, "parse flags error")
	}

	conf := mergeConfig(&envConf, flagsConf)
	if err = fillSecrets(conf); err != nil {
		return nil, errors.Wrap(err, "generate secrets error")
	}
	return conf, nil
}

// MustLoadConfig аналогичен LoadConfig, но паникует при ошибке.
func MustLoadConfig(args []string) *Config {
	conf, err := LoadConfig(args)
	if err != nil {
		panic(err)
	}
	return conf
}

// StorageType выбирает хранилище: DSN - postgres, путь к файлу - sqlite, иначе память.
func (c *Config) StorageType() db.StorageType {
	switch {
	case c.DatabaseDSN != "":
		return db.StorageTypePostgres
	case c.SQLitePath != "":
		return db.StorageTypeSQLite
	default:
		return db.StorageTypeInMemory
	}
}

// loadFlags парсит флаги командной строки.
func loadFlags(args []string) (*Config, error) {
	conf := Config{}
	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&conf.ServerAddress, "a", defaultServerAddress, "Адрес сервера")

	bDesc := "Базовый адрес результирующего сокращенного URL (по умолчанию Scheme://Host запроса)"
	fs.Func("b", bDesc, func(rawURL string) error {
		parsedURL, err := parseBaseURL(rawURL)
		if err != nil {
			return err
		}
		conf.BaseURL = parsedURL
		return nil
	})

	fs.StringVar(&conf.DatabaseDSN, "d", "", "Строка подключения к PostgreSQL")
	fs.StringVar(&conf.SQLitePath, "s", "", "Путь к файлу sqlite")
	fs.StringVar(&conf.RedisAddr, "r", "", "Адрес redis для кэша переадресаций")
	fs.DurationVar(&conf.RedisTTL, "redis-ttl", defaultRedisTTL, "Время жизни записи кэша")
	fs.StringVar(&conf.SessionSecret, "k", "", "Ключ подписи сессий")
	fs.DurationVar(&conf.SessionTTL, "session-ttl", defaultSessionTTL, "Время жизни сессии")
	fs.StringVar(&conf.NotesKey, "n", "", "Ключ шифрования заметок")
	fs.BoolVar(&conf.EnableHTTPS, "tls", false, "Запустить сервер по HTTPS")
	fs.StringVar(&conf.TLSCertFile, "tls-cert", defaultTLSCertFile, "Файл сертификата")
	fs.StringVar(&conf.TLSKeyFile, "tls-key", defaultTLSKeyFile, "Файл приватного ключа")
	fs.StringVar(&conf.LogLevel, "log-level", "", "Уровень логирования")
	fs.StringVar(&conf.LogFile, "log-file", "", "Файл логов с ротацией")
	fs.DurationVar(&conf.ClickRecordTimeout, "click-timeout", defaultClickRecordTimeout, "Таймаут записи перехода")
	fs.IntVar(&conf.MaxGenerateAttempts, "max-attempts", defaultMaxGenerateAttempts, "Лимит попыток генерации кода")

	if err := fs.Parse(args); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &conf, nil
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse base url")
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.Errorf("base url %q must contain scheme and host", rawURL)
	}
	// создаем новый инстанс, отсекая тем самым Path и Query если они заданы в базовом урле.
	return &url.URL{
		Scheme: parsedURL.Scheme,
		Host:   parsedURL.Host,
	}, nil
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConf *envConfig, flagsConf *Config) *Config {
	baseURL := flagsConf.BaseURL
	if envConf.BaseURL != nil {
		baseURL = &url.URL{Scheme: envConf.BaseURL.Scheme, Host: envConf.BaseURL.Host}
	}
	enableHTTPS := flagsConf.EnableHTTPS
	if envConf.EnableHTTPS != nil {
		enableHTTPS = *envConf.EnableHTTPS
	}

	return &Config{
		ServerAddress:       defaultIfBlank(envConf.ServerAddress, flagsConf.ServerAddress),
		BaseURL:             baseURL,
		DatabaseDSN:         defaultIfBlank(envConf.DatabaseDSN, flagsConf.DatabaseDSN),
		SQLitePath:          defaultIfBlank(envConf.SQLitePath, flagsConf.SQLitePath),
		RedisAddr:           defaultIfBlank(envConf.RedisAddr, flagsConf.RedisAddr),
		RedisTTL:            defaultIfBlank(envConf.RedisTTL, flagsConf.RedisTTL),
		SessionSecret:       defaultIfBlank(envConf.SessionSecret, flagsConf.SessionSecret),
		SessionTTL:          defaultIfBlank(envConf.SessionTTL, flagsConf.SessionTTL),
		NotesKey:            defaultIfBlank(envConf.NotesKey, flagsConf.NotesKey),
		EnableHTTPS:         enableHTTPS,
		TLSCertFile:         defaultIfBlank(envConf.TLSCertFile, flagsConf.TLSCertFile),
		TLSKeyFile:          defaultIfBlank(envConf.TLSKeyFile, flagsConf.TLSKeyFile),
		LogLevel:            defaultIfBlank(envConf.LogLevel, flagsConf.LogLevel),
		LogFile:             defaultIfBlank(envConf.LogFile, flagsConf.LogFile),
		ClickRecordTimeout:  defaultIfBlank(envConf.ClickRecordTimeout, flagsConf.ClickRecordTimeout),
		MaxGenerateAttempts: defaultIfBlank(envConf.MaxGenerateAttempts, flagsConf.MaxGenerateAttempts),
	}
}

func defaultIfBlank[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}

// fillSecrets генерирует случайные секреты, если они не заданы. Сессии и заметки
// в этом случае не переживут перезапуск, поэтому приложение пишет предупреждение.
func fillSecrets(conf *Config) error {
	if conf.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return err
		}
		conf.SessionSecret = secret
		conf.GeneratedSecrets = true
	}
	if conf.NotesKey == "" {
		secret, err := randomSecret()
		if err != nil {
			return err
		}
		conf.NotesKey = secret
		conf.GeneratedSecrets = true
	}
	return nil
}

func randomSecret() (string, error) {
	b := make([]byte, generatedSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}
	return hex.EncodeToString(b), nil
}
