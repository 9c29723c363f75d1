package ports

import "go.trai.ch/folio/internal/core/domain"

// ConfigLoader defines the interface for loading and writing the site configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads config.toml, or config.yaml when the former is absent, from root.
	Load(root string) (*domain.SiteConfig, error)

	// Path returns the config file Load would read, or "" when there is none.
	Path(root string) string

	// Write stores cfg as config.toml under root and returns the written path.
	Write(root string, cfg *domain.SiteConfig) (string, error)
}
