// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-rrlyrics/internal/data"
	"github.com/hazadus/go-rrlyrics/internal/i18n"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	DefaultExtension string `yaml:"default_extension"`
	OutputDir        string `yaml:"output_dir"`
	OutputName       string `yaml:"output_name"`
	Locale           string `yaml:"locale"`
	AwsBucketName    string `yaml:"aws_bucket_name"`
	AwsAccessKey     string `yaml:"aws_access_key"`
	AwsSecretKey     string `yaml:"aws_secret_key"`
	AwsRegion        string `yaml:"aws_region"`
	AwsEndpoint      string `yaml:"aws_endpoint"`
	AwsPrefix        string `yaml:"aws_prefix"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		DefaultExtension: data.DefaultExtension,
		OutputDir:        ".",
		OutputName:       "lyrics",
		Locale:           i18n.DefaultLocale,
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := Default()

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Конфигурация не обязательна
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(raw, config); err != nil {
			return nil, err
		}
	}

	// Переменные окружения имеют приоритет над файлом
	config.Locale = envStr("RRLYRICS_LOCALE", config.Locale)
	config.OutputDir = envStr("RRLYRICS_OUTPUT_DIR", config.OutputDir)

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.DefaultExtension == "" {
		config.DefaultExtension = data.DefaultExtension
	}
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.OutputName == "" {
		config.OutputName = "lyrics"
	}
	if config.Locale == "" {
		config.Locale = i18n.DefaultLocale
	}

	// Раскрываем тильду в каталоге экспорта
	config.OutputDir = strings.Replace(config.OutputDir, "~", home, 1)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if !slices.Contains(data.Extensions, c.DefaultExtension) {
		return fmt.Errorf("неизвестное расширение %q, допустимые: %s",
			c.DefaultExtension, strings.Join(data.Extensions, ", "))
	}
	if !i18n.IsSupported(c.Locale) {
		return fmt.Errorf("неизвестный язык %q, допустимые: %s",
			c.Locale, strings.Join(i18n.Locales(), ", "))
	}
	return nil
}

// HasStorage сообщает, настроено ли хранилище S3 для публикации
func (c *Config) HasStorage() bool {
	return c.AwsBucketName != "" && c.AwsRegion != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
