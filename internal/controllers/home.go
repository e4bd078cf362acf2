package controllers

import (
	"github.com/antonrybalko/webapp-go/internal/domain"
	"github.com/antonrybalko/webapp-go/internal/mvc"
	"go.uber.org/zap"
)

// View bag keys populated by HomeController
const (
	KeyTitle   = "Title"
	KeyAppName = "AppName"
	KeyMessage = "Message"
	KeyContact = "Contact"
)

// HomeController serves the site's static pages
type HomeController struct {
	mvc.Controller
	content *domain.SiteContent
	logger  *zap.SugaredLogger
}

// NewHomeController creates a controller with a fresh view bag.
// A nil content uses the built-in site content.
func NewHomeController(content *domain.SiteContent, logger *zap.SugaredLogger) *HomeController {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &HomeController{
		Controller: mvc.NewController(),
		content:    content.WithDefaults(),
		logger:     logger,
	}
}

// Index renders the landing page
func (c *HomeController) Index() mvc.ActionResult {
	c.setCommon("Home Page")
	return c.View("Index")
}

// About sets the about message and renders the about page
func (c *HomeController) About() mvc.ActionResult {
	c.setCommon("About")
	c.ViewBag().Set(KeyMessage, c.content.AboutMessage)

	c.logger.Debugw("About page requested", "message", c.content.AboutMessage)
	return c.View("About")
}

// Contact renders the contact page with the configured contact details
func (c *HomeController) Contact() mvc.ActionResult {
	c.setCommon("Contact")
	c.ViewBag().Set(KeyMessage, c.content.ContactMessage)
	c.ViewBag().Set(KeyContact, c.content.Contact)

	c.logger.Debugw("Contact page requested")
	return c.View("Contact")
}

func (c *HomeController) setCommon(title string) {
	c.ViewBag().Set(KeyTitle, title)
	c.ViewBag().Set(KeyAppName, c.content.AppName)
}
