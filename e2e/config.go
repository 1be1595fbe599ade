package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ConnectionBufferSize int `envconfig:"E2E_CONNECTION_BUFFER_SIZE" default:"32"`
	// E2E_SINK_TIMEOUT bounds delivery to a single connection's buffer
	SinkTimeout time.Duration `envconfig:"E2E_SINK_TIMEOUT" default:"1s"`
	// E2E_READ_TIMEOUT bounds how long a scenario waits for one frame
	ReadTimeout time.Duration `envconfig:"E2E_READ_TIMEOUT" default:"3s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
