package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/locale"
	"github.com/Veraticus/signal-companion/internal/playback"
)

// UIConfig holds presentation settings shared by the CLI and the TUI.
type UIConfig struct {
	Language         locale.Language
	PlaybackInterval time.Duration
}

// LoadUIConfig reads ui.language and playback.interval.
func LoadUIConfig() (*UIConfig, error) {
	config := UIConfig{
		Language:         locale.English,
		PlaybackInterval: playback.DefaultInterval,
	}

	lang, err := locale.Parse(viper.GetString("ui.language"))
	if err != nil {
		return nil, err
	}
	config.Language = lang

	if viper.IsSet("playback.interval") {
		interval := viper.GetDuration("playback.interval")
		if interval <= 0 {
			return nil, fmt.Errorf("%w: playback interval must be positive", common.ErrInvalidConfig)
		}
		config.PlaybackInterval = interval
	}

	return &config, nil
}
