package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"oilevels/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Levels    LevelsConfig    `json:"levels"`
	Export    ExportConfig    `json:"export"`
	GiftNifty GiftNiftyConfig `json:"gift_nifty"`
	Telegram  TelegramConfig  `json:"telegram"`
}

type ServerConfig struct {
	Port         string `json:"port"`
	ReadTimeout  string `json:"read_timeout"`
	WriteTimeout string `json:"write_timeout"`

	// Private fields to store parsed durations
	readTimeoutDuration  time.Duration
	writeTimeoutDuration time.Duration
}

type LevelsConfig struct {
	TopN            int      `json:"top_n"`
	DayPrefixes     []string `json:"day_prefixes"`
	TotalSheetName  string   `json:"total_sheet_name"`
	MaxSheetName    string   `json:"max_sheet_name"`
	HeaderScanDepth int      `json:"header_scan_depth"`
}

type ExportConfig struct {
	Enabled bool   `json:"enabled"`
	BaseDir string `json:"base_dir"`
	Archive bool   `json:"archive"`
	CSV     bool   `json:"csv"`
}

type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token"`
	ChatID   string `json:"chat_id"`
}

type GiftNiftyConfig struct {
	ScannerURL string `json:"scanner_url"`
	Symbol     string `json:"symbol"`
	Timeout    string `json:"timeout"`

	timeoutDuration time.Duration
}

var (
	instance *Config
	once     sync.Once
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  "300s",
			WriteTimeout: "300s",
		},
		Levels: LevelsConfig{
			TopN:            5,
			DayPrefixes:     []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"},
			TotalSheetName:  "Total",
			MaxSheetName:    "Max",
			HeaderScanDepth: 10,
		},
		Export: ExportConfig{
			Enabled: false,
			BaseDir: "data/exports",
			Archive: true,
			CSV:     true,
		},
		GiftNifty: GiftNiftyConfig{
			ScannerURL: "https://scanner.tradingview.com/global/scan",
			Symbol:     "NSEIX:NIFTY1!",
			Timeout:    "10s",
		},
	}
}

// GetConfig loads configuration once and caches it. A missing config file is
// not fatal: defaults apply, optionally overridden by config/config.json and
// environment variables (loaded from .env when present).
func GetConfig() *Config {
	once.Do(func() {
		instance = loadConfig()
	})
	return instance
}

func loadConfig() *Config {
	log := logger.GetLogger()
	cfg := DefaultConfig()

	// .env is optional
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded environment overrides from .env", nil)
	}

	workDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get working directory", map[string]interface{}{
			"error": err.Error(),
		})
		return cfg
	}

	configPath := filepath.Join(workDir, "config", "config.json")
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		log.Info("No config file found, using defaults", map[string]interface{}{
			"path": configPath,
		})
	} else {
		if err := json.Unmarshal(configFile, cfg); err != nil {
			log.Error("Failed to parse config file, using defaults", map[string]interface{}{
				"error": err.Error(),
				"path":  configPath,
			})
			cfg = DefaultConfig()
		} else {
			log.Info("Successfully loaded config", map[string]interface{}{
				"path": configPath,
			})
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Server.ToDuration(); err != nil {
		log.Error("Invalid server timeouts, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		cfg.Server = DefaultConfig().Server
		cfg.Server.ToDuration()
	}
	if err := cfg.GiftNifty.ToDuration(); err != nil {
		log.Error("Invalid gift nifty timeout, using default", map[string]interface{}{
			"error": err.Error(),
		})
		cfg.GiftNifty = DefaultConfig().GiftNifty
		cfg.GiftNifty.ToDuration()
	}

	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if port := os.Getenv("OILEVELS_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if dir := os.Getenv("OILEVELS_EXPORT_DIR"); dir != "" {
		cfg.Export.BaseDir = dir
		cfg.Export.Enabled = true
	}
}

// ToDuration converts the string timeout values to time.Duration after unmarshaling
func (s *ServerConfig) ToDuration() error {
	var err error
	s.readTimeoutDuration, err = time.ParseDuration(s.ReadTimeout)
	if err != nil {
		return fmt.Errorf("invalid read_timeout duration: %w", err)
	}

	s.writeTimeoutDuration, err = time.ParseDuration(s.WriteTimeout)
	if err != nil {
		return fmt.Errorf("invalid write_timeout duration: %w", err)
	}

	return nil
}

func (s *ServerConfig) GetReadTimeout() time.Duration {
	return s.readTimeoutDuration
}

func (s *ServerConfig) GetWriteTimeout() time.Duration {
	return s.writeTimeoutDuration
}

func (g *GiftNiftyConfig) ToDuration() error {
	var err error
	g.timeoutDuration, err = time.ParseDuration(g.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout duration: %w", err)
	}
	return nil
}

func (g *GiftNiftyConfig) GetTimeout() time.Duration {
	return g.timeoutDuration
}
