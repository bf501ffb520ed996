package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const EnvPrefix = "LIFT_ATLAS"

type ChartSettings struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type Settings struct {
	Currency string        `mapstructure:"currency"`
	Locale   string        `mapstructure:"locale"`
	LogLevel string        `mapstructure:"log_level"`
	Chart    ChartSettings `mapstructure:"chart"`
}

// LoadSettings reads settings from path, if given, and overlays LIFT_ATLAS_*
// environment variables, e.g. LIFT_ATLAS_CHART_WIDTH.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("currency", "USD")
	v.SetDefault("locale", "en-US")
	v.SetDefault("log_level", "info")
	v.SetDefault("chart.width", 640)
	v.SetDefault("chart.height", 320)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(s.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("invalid currency %q: %w", s.Currency, err)
	}
	return unit, nil
}

func (s *Settings) Language() (language.Tag, error) {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s.Locale, err)
	}
	return tag, nil
}

func (s *Settings) validate() error {
	if _, err := s.CurrencyUnit(); err != nil {
		return err
	}
	if _, err := s.Language(); err != nil {
		return err
	}
	if s.Chart.Width <= 0 || s.Chart.Height <= 0 {
		return errors.New("chart dimensions must be positive")
	}
	return nil
}
