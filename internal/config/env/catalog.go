package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type catalogEnv struct {
	BaseURL    string `env:"CATALOG_URL,required"`
	Token      string `env:"CATALOG_TOKEN,required"`
	Collection string `env:"CATALOG_COLLECTION" envDefault:"Product"`

	RequestTimeout time.Duration `env:"CATALOG_REQUEST_TIMEOUT" envDefault:"15s"`
	SimilarLimit   int           `env:"CATALOG_SIMILAR_LIMIT" envDefault:"12"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) BaseURL() string    { return cfg.raw.BaseURL }
func (cfg *catalog) Token() string      { return cfg.raw.Token }
func (cfg *catalog) Collection() string { return cfg.raw.Collection }

func (cfg *catalog) RequestTimeout() time.Duration {
	return cfg.raw.RequestTimeout
}

func (cfg *catalog) SimilarLimit() int { return cfg.raw.SimilarLimit }
