package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
	SMTP     SMTPConfig
	Backup   BackupConfig
	S3       S3Config
}

// ServerConfig - конфигурация сервера
type ServerConfig struct {
	Port string
}

// DatabaseConfig - конфигурация базы данных.
// Backend "mysql" использует DSN, Backend "memory" поднимает хранилище в памяти
// (данные живут только до перезапуска процесса).
type DatabaseConfig struct {
	Backend string
	DSN     string // например "user:password@tcp(localhost:3306)/vacation_tracker?parseTime=true"
}

// JWTConfig - конфигурация JWT
type JWTConfig struct {
	Secret string
}

// AdminConfig - учетная запись администратора.
// Хеш пароля генерируется утилитой cmd/hashgen.
type AdminConfig struct {
	Login        string
	PasswordHash string
}

// SMTPConfig - конфигурация почтового сервера для отправки резервных копий
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// BackupConfig - конфигурация резервного копирования
type BackupConfig struct {
	Recipient string        // фиксированный адрес получателя
	Interval  time.Duration // интервал между запусками, по умолчанию сутки
	Enabled   bool          // запускать ли планировщик
}

// S3Config - объектное хранилище для снимков резервных копий.
// Если Bucket пустой, выгрузка в S3 отключена.
type S3Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string // для MinIO и совместимых хранилищ
	AccessKey    string
	SecretKey    string
}

// Load читает конфигурацию из переменных окружения с значениями по умолчанию
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", ":8080"),
		},
		Database: DatabaseConfig{
			Backend: getEnv("DB_BACKEND", "mysql"),
			DSN:     getEnv("DB_DSN", "root:root@tcp(localhost:3306)/vacation_tracker?parseTime=true"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Admin: AdminConfig{
			Login:        getEnv("ADMIN_LOGIN", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "backup@vacation-tracker.local"),
			Timeout:  getEnvDuration("SMTP_TIMEOUT", 15*time.Second),
		},
		Backup: BackupConfig{
			Recipient: getEnv("BACKUP_RECIPIENT", "backup@vacation-tracker.local"),
			Interval:  getEnvDuration("BACKUP_INTERVAL", 24*time.Hour),
			Enabled:   getEnvBool("BACKUP_ENABLED", true),
		},
		S3: S3Config{
			Bucket:       getEnv("S3_BUCKET", ""),
			Region:       getEnv("S3_REGION", "us-east-1"),
			BaseEndpoint: getEnv("S3_BASE_ENDPOINT", ""),
			AccessKey:    getEnv("S3_ACCESS_KEY", ""),
			SecretKey:    getEnv("S3_SECRET_KEY", ""),
		},
	}

	if cfg.Server.Port == "" {
		return nil, errors.New("необходимо указать порт сервера")
	}
	if cfg.Database.Backend != "mysql" && cfg.Database.Backend != "memory" {
		return nil, errors.New("DB_BACKEND должен быть 'mysql' или 'memory'")
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("необходимо установить JWT_SECRET")
	}
	if cfg.Backup.Interval <= 0 {
		return nil, errors.New("интервал резервного копирования должен быть положительным")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
