package conf

import (
	"net"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

const defaultBaseUrl = "https://registration.bogazici.edu.tr/scripts/sch.asp"

type Config struct {
	AppName string
	Scrape  Scrape `toml:"scrape"`
	Output  Output `toml:"output"`
}

type Scrape struct {
	BaseUrl        string `toml:"base_url" envconfig:"BOUN_BASE_URL"`
	TimeoutSeconds int    `toml:"timeout_seconds" envconfig:"BOUN_TIMEOUT_SECONDS"`
	DelayMillis    int    `toml:"delay_millis" envconfig:"BOUN_DELAY_MILLIS"`
}

type Output struct {
	File string `toml:"file" envconfig:"BOUN_OUTPUT_FILE"`
}

func OpenConfig(file *os.File) Config {
	return OpenConfigWithName(file, "")
}

func OpenConfigWithName(file *os.File, name string) Config {
	c := Config{}
	if _, err := toml.NewDecoder(file).Decode(&c); err != nil {
		log.Fatalln("error while decoding config file checking environment:", err)
	}

	c.fromEnvironment()
	c.setDefaults()
	c.AppName = name

	return c
}

func (c *Config) fromEnvironment() {
	err := envconfig.Process("", &c.Scrape)
	if err != nil {
		log.Fatal(err.Error())
	}

	err = envconfig.Process("", &c.Output)
	if err != nil {
		log.Fatal(err.Error())
	}
}

func (c *Config) setDefaults() {
	if c.Scrape.BaseUrl == "" {
		c.Scrape.BaseUrl = defaultBaseUrl
	}
	if c.Scrape.TimeoutSeconds == 0 {
		c.Scrape.TimeoutSeconds = 10
	}
	if c.Scrape.DelayMillis == 0 {
		c.Scrape.DelayMillis = 1000
	}
}

func (c Config) ScrapeTimeout() time.Duration {
	return time.Duration(c.Scrape.TimeoutSeconds) * time.Second
}

func (c Config) ScrapeDelay() time.Duration {
	return time.Duration(c.Scrape.DelayMillis) * time.Millisecond
}

func (c Config) DebugSever(appName string) net.Listener {
	listener, err := net.Listen("tcp", ":13100")
	if err != nil {
		listener, _ = net.Listen("tcp", ":0")
		log.Println("pprof on port...", listener.Addr().(*net.TCPAddr).Port)
	}

	return listener
}
