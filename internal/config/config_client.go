package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used to sign bulk request bodies.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the fuelctl configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// SessionFile is where the signed-in session is persisted.
	SessionFile string
}

// GetClientConfig builds and validates the fuelctl configuration.
//
// Flags belong to the fuelctl command tree, so only the .env file,
// environment variables and the JSON file named by CONFIG are consulted.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withJSON()
	// the server-side requirements (sign key etc.) do not apply to fuelctl
	b.validator = nil

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		SessionFile: cfg.Client.SessionFile,
	}

	return clientCfg, clientCfg.validate()
}
