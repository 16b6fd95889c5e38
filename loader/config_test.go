package loader

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSources() {
	viper.Set("sources.gis.cases", "https://example.com/cases")
	viper.Set("sources.gis.confirmed", "https://example.com/confirmed")
	viper.Set("sources.gis.recovered", "https://example.com/recovered")
	viper.Set("sources.gis.deaths", "https://example.com/deaths")
}

func TestConfigFromViper(t *testing.T) {
	defer viper.Reset()
	setSources()
	viper.Set("loader.timezone", "GMT+8")

	c, err := ConfigFromViper()
	require.Nil(t, err, "wrong ConfigFromViper")
	assert.Equal(t, DefaultInterval, c.Interval)
	assert.Equal(t, DefaultFetchTimeout, c.FetchTimeout)
	assert.Equal(t, "GMT+8", c.Location.String())
	assert.Equal(t, "https://example.com/cases", c.Snapshot.Cases)
	assert.Equal(t, "", c.SeriesBaseURL)
}

func TestConfigFromViperInterval(t *testing.T) {
	defer viper.Reset()
	setSources()
	viper.Set("loader.interval", "10m")

	c, err := ConfigFromViper()
	require.Nil(t, err, "wrong ConfigFromViper")
	assert.Equal(t, 10*time.Minute, c.Interval)
	assert.Equal(t, time.UTC, c.Location)

	viper.Set("loader.interval", "10s")
	_, err = ConfigFromViper()
	assert.NotNil(t, err, "interval below a minute")
}

func TestConfigFromViperInvalid(t *testing.T) {
	defer viper.Reset()
	setSources()

	viper.Set("loader.timezone", "Mars/Olympus")
	_, err := ConfigFromViper()
	assert.True(t, errors.Is(err, ErrInvalidTimezone), "wrong error")

	viper.Set("loader.timezone", "")
	viper.Set("sources.gis.deaths", "")
	_, err = ConfigFromViper()
	assert.NotNil(t, err, "missing url")

	viper.Set("sources.gis.deaths", "https://example.com/deaths")
	viper.Set("sources.github.base", "not a url")
	_, err = ConfigFromViper()
	assert.NotNil(t, err, "invalid base url")
}
