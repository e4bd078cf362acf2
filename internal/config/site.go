package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"

	"github.com/antonrybalko/webapp-go/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrSiteConfigNotFound is returned when the site content file does not exist
var ErrSiteConfigNotFound = errors.New("site config file not found")

// LoadSiteContent loads page content from a YAML file
func LoadSiteContent(configPath string) (*domain.SiteContent, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSiteConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("failed to read site config file: %w", err)
	}

	var content domain.SiteContent
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse site config YAML: %w", err)
	}

	if err := validateSiteContent(&content); err != nil {
		return nil, fmt.Errorf("invalid site config: %w", err)
	}

	return content.WithDefaults(), nil
}

// LoadSiteContentOrDefault loads the site content file, falling back to the
// built-in content when the file is absent. Any other failure is returned.
func LoadSiteContentOrDefault(configPath string, logger *zap.SugaredLogger) (*domain.SiteContent, error) {
	content, err := LoadSiteContent(configPath)
	if errors.Is(err, ErrSiteConfigNotFound) {
		logger.Warnw("Site config not found, using defaults", "path", configPath)
		return domain.DefaultSiteContent(), nil
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}

// validateSiteContent checks that configured contact details are well formed
func validateSiteContent(content *domain.SiteContent) error {
	for field, addr := range map[string]string{
		"supportEmail":   content.Contact.SupportEmail,
		"marketingEmail": content.Contact.MarketingEmail,
	} {
		if addr == "" {
			continue
		}
		if _, err := mail.ParseAddress(addr); err != nil {
			return fmt.Errorf("contact %s %q is not a valid email address", field, addr)
		}
	}
	return nil
}
