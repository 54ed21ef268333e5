// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06 // секунды; защищает симуляцию от скачков кадра

	IndicatorOffsetX = 30
	HintSpeed        = 20.0 // скорость всплытия подсказки урона, ед/с
	HintLifetime     = 1.0  // секунды

	TUICellWidth  = 10.0 // мировых единиц на символ по горизонтали
	TUICellHeight = 20.0 // мировых единиц на символ по вертикали

	ConfigEnvVar = "SURVIVOR_CONFIG"

	DamageFlashDuration = 150 * time.Millisecond
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	PlayerColor      = color.RGBA{120, 170, 255, 255}
	EnemyColor       = color.RGBA{200, 60, 60, 255}
	EnemyFlashColor  = color.RGBA{255, 255, 255, 255}
	ProjectileColor  = color.RGBA{255, 40, 40, 255}
	TextLightColor   = color.RGBA{250, 235, 215, 255}
	XPBarColorBack   = color.RGBA{128, 128, 128, 255}
	XPBarColorFill   = color.RGBA{128, 0, 128, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 102}
	GridColor        = color.RGBA{30, 30, 40, 255}
	DamageFlashColor = color.RGBA{255, 255, 255, 255}
)

// Config корневая структура конфигурации приложения.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Debug  DebugConfig  `yaml:"debug"`
	Sim    SimConfig    `yaml:"sim"`
	Log    LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"`
}

// DebugConfig — HTTP-сервер с pprof и /metrics.
type DebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type SimConfig struct {
	Seed        int64  `yaml:"seed"` // 0 — сид от текущего времени
	DefsPath    string `yaml:"defs_path"`
	StartInGame bool   `yaml:"start_in_game"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Title: "Survivor", Scale: 1},
		Debug:  DebugConfig{Enabled: true, Addr: "localhost:6060"},
		Sim:    SimConfig{StartInGame: false},
		Log:    LogConfig{Level: "info"},
	}
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать путь из ENV SURVIVOR_CONFIG; если и он
// не задан — возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Window.Scale <= 0 {
		cfg.Window.Scale = 1
	}
	return cfg, nil
}
