package conf

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenConfigWithName(t *testing.T) {
	file, err := os.CreateTemp("", "config*.toml")
	assert.NoError(t, err)
	defer os.Remove(file.Name())

	_, err = file.WriteString(`
[scrape]
timeout_seconds = 30
delay_millis = 250

[output]
file = "courses.json"
`)
	assert.NoError(t, err)
	_, err = file.Seek(0, 0)
	assert.NoError(t, err)

	config := OpenConfigWithName(file, "boun")

	assert.Equal(t, "boun", config.AppName)
	assert.Equal(t, defaultBaseUrl, config.Scrape.BaseUrl)
	assert.Equal(t, 30, config.Scrape.TimeoutSeconds)
	assert.Equal(t, 250, config.Scrape.DelayMillis)
	assert.Equal(t, "courses.json", config.Output.File)
}

func TestConfigDefaults(t *testing.T) {
	c := Config{}
	c.setDefaults()

	assert.Equal(t, defaultBaseUrl, c.Scrape.BaseUrl)
	assert.Equal(t, 10, c.Scrape.TimeoutSeconds)
	assert.Equal(t, 1000, c.Scrape.DelayMillis)
}
