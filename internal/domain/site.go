package domain

import "strings"

// Default page messages used when the site content file leaves them blank
const (
	DefaultAppName        = "Web Application"
	DefaultAboutMessage   = "Your application description page."
	DefaultContactMessage = "Your contact page."
)

// ContactInfo holds the details rendered on the contact page
type ContactInfo struct {
	Address        []string `yaml:"address" json:"address"`
	Phone          string   `yaml:"phone" json:"phone"`
	SupportEmail   string   `yaml:"supportEmail" json:"supportEmail"`
	MarketingEmail string   `yaml:"marketingEmail" json:"marketingEmail"`
}

// SiteContent represents the static page content loaded from YAML
type SiteContent struct {
	AppName        string      `yaml:"appName" json:"appName"`
	AboutMessage   string      `yaml:"aboutMessage" json:"aboutMessage"`
	ContactMessage string      `yaml:"contactMessage" json:"contactMessage"`
	Contact        ContactInfo `yaml:"contact" json:"contact"`
}

// DefaultSiteContent returns the built-in content of the starter site
func DefaultSiteContent() *SiteContent {
	return &SiteContent{
		AppName:        DefaultAppName,
		AboutMessage:   DefaultAboutMessage,
		ContactMessage: DefaultContactMessage,
		Contact: ContactInfo{
			Address:        []string{"One Microsoft Way", "Redmond, WA 98052-6399"},
			Phone:          "425.555.0100",
			SupportEmail:   "Support@example.com",
			MarketingEmail: "Marketing@example.com",
		},
	}
}

// WithDefaults returns a copy of the content with blank messages replaced by defaults
func (c *SiteContent) WithDefaults() *SiteContent {
	if c == nil {
		return DefaultSiteContent()
	}

	out := *c
	if strings.TrimSpace(out.AppName) == "" {
		out.AppName = DefaultAppName
	}
	if strings.TrimSpace(out.AboutMessage) == "" {
		out.AboutMessage = DefaultAboutMessage
	}
	if strings.TrimSpace(out.ContactMessage) == "" {
		out.ContactMessage = DefaultContactMessage
	}
	return &out
}
