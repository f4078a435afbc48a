// Package config provides the service configuration: built-in defaults,
// an optional YAML file with environment variable expansion, and direct
// environment overrides applied last.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Built-in defaults. The RPC endpoint works out of the box against a
// public mainnet gateway; production deployments override it via RPC_URL.
const (
	DefaultRPCURL     = "https://ethereum.publicnode.com"
	DefaultListenAddr = ":8080"
	DefaultTimeout    = 10 * time.Second
)

// Config holds all settings for the block summary service. There is no
// runtime reconfiguration: the config is read once before the process
// starts serving.
type Config struct {
	RPCURL     string        `yaml:"rpc_url"`     // JSON-RPC endpoint (supports ${VAR} expansion in the file)
	ListenAddr string        `yaml:"listen_addr"` // Address the HTTP server binds to
	Timeout    time.Duration `yaml:"timeout"`     // Outbound RPC request timeout
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RPCURL:     DefaultRPCURL,
		ListenAddr: DefaultListenAddr,
		Timeout:    DefaultTimeout,
	}
}

// Load returns the default configuration overlaid with the optional YAML
// file at path and then with environment overrides. An empty path skips
// the file entirely; the service runs fine on defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config")
		}

		// Expand ${VAR} references so endpoint URLs with API keys can
		// stay out of the file itself.
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config")
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays direct environment overrides. These win over both
// defaults and file values.
func (c *Config) applyEnv() {
	if v, found := os.LookupEnv("RPC_URL"); found {
		c.RPCURL = v
	}
	if v, found := os.LookupEnv("LISTEN_ADDR"); found {
		c.ListenAddr = v
	}
}

// Validate checks the configuration and warns (to stderr) about suspicious
// timeout values without failing on them.
func (c *Config) Validate() error {
	if c.RPCURL == "" {
		return errors.New("rpc_url is required")
	}

	u, err := url.Parse(c.RPCURL)
	if err != nil {
		return errors.Wrap(err, "invalid rpc_url")
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.New("invalid rpc_url (missing scheme or host)")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("invalid rpc_url scheme %q (expected http or https)", u.Scheme)
	}

	if c.ListenAddr == "" {
		return errors.New("listen_addr is required")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be > 0")
	}

	const low = 500 * time.Millisecond
	const high = 2 * time.Minute
	if c.Timeout < low {
		fmt.Fprintf(os.Stderr, "Warning: timeout is very low (%s); requests may fail under normal network jitter\n", c.Timeout)
	}
	if c.Timeout > high {
		fmt.Fprintf(os.Stderr, "Warning: timeout is very high (%s); upstream failures may take a long time to surface\n", c.Timeout)
	}

	return nil
}
