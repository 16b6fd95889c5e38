package loader

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/corona-loader/external/gis"
	"github.com/bitmark-inc/corona-loader/utils"
)

const (
	DefaultInterval     = 30 * time.Minute
	DefaultFetchTimeout = 30 * time.Second
)

var ErrInvalidTimezone = fmt.Errorf("invalid timezone")

// Config - settings of the loader
type Config struct {
	Interval      time.Duration  `validate:"gte=1m"`
	FetchTimeout  time.Duration  `validate:"gt=0"`
	Location      *time.Location `validate:"required"`
	Snapshot      gis.URLs
	SeriesBaseURL string `validate:"omitempty,url"`
}

// Validate - check the settings against their tags
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// ConfigFromViper - collect the loader settings of the loaded configuration
func ConfigFromViper() (Config, error) {
	c := Config{
		Interval:     viper.GetDuration("loader.interval"),
		FetchTimeout: viper.GetDuration("loader.fetch_timeout"),
		Snapshot: gis.URLs{
			Cases:     viper.GetString("sources.gis.cases"),
			Confirmed: viper.GetString("sources.gis.confirmed"),
			Recovered: viper.GetString("sources.gis.recovered"),
			Deaths:    viper.GetString("sources.gis.deaths"),
		},
		SeriesBaseURL: viper.GetString("sources.github.base"),
	}

	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}

	tz := viper.GetString("loader.timezone")
	c.Location = utils.GetLocation(tz)
	if c.Location == nil {
		return c, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	if err := c.Validate(); nil != err {
		return c, err
	}

	return c, nil
}
