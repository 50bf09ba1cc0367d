package filemagic

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Result cache
	CacheEnabled bool `env:"FILEMAGIC_CACHE_ENABLED,default:false"`
	CacheSize    int  `env:"FILEMAGIC_CACHE_SIZE,default:1024"`

	// Table restrictions (comma-separated glob patterns)
	MIMETypes  string `env:"FILEMAGIC_MIME_TYPES"`
	Extensions string `env:"FILEMAGIC_EXTENSIONS"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
