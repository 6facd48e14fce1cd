package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/wizardfight/internal/logger"
	"github.com/samdwyer/wizardfight/internal/world"
)

// MinBoardSide is the smallest board width or height the game accepts.
const MinBoardSide = 8

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	BoardWidth  int
	BoardHeight int

	LogLevel  string // logrus level name
	LogFormat string // "json" or "text"
	LogFile   string // The terminal owns stdout, so logs go to a file

	// Telemetry enables OTLP trace export.
	Telemetry bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		BoardWidth:  world.DefaultWidth,
		BoardHeight: world.DefaultHeight,
		LogLevel:    "info",
		LogFormat:   "text",
		LogFile:     "wizardfight.log",
	}
}

// ConfigFromEnv overlays environment variables on DefaultConfig.
// Unparseable values are logged and ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	log := logger.Component("config")

	envInt := func(key string, dst *int) {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			log.WithField("key", key).WithField("value", v).Warn("ignoring non-numeric value")
			return
		}
		*dst = n
	}
	envString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	envInt("WIZARDFIGHT_BOARD_WIDTH", &cfg.BoardWidth)
	envInt("WIZARDFIGHT_BOARD_HEIGHT", &cfg.BoardHeight)
	envString("LOG_LEVEL", &cfg.LogLevel)
	envString("LOG_FORMAT", &cfg.LogFormat)
	envString("WIZARDFIGHT_LOG_FILE", &cfg.LogFile)

	if v, ok := os.LookupEnv("WIZARDFIGHT_TELEMETRY"); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			log.WithField("value", v).Warn("ignoring invalid WIZARDFIGHT_TELEMETRY")
		} else {
			cfg.Telemetry = enabled
		}
	}
	return cfg
}

// Validate checks the board dimensions.
func (c Config) Validate() error {
	if c.BoardWidth < MinBoardSide || c.BoardHeight < MinBoardSide {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.BoardWidth, c.BoardHeight, MinBoardSide, MinBoardSide)
	}
	return nil
}

// Size returns the configured board size.
func (c Config) Size() world.Size {
	return world.Size{Width: c.BoardWidth, Height: c.BoardHeight}
}
