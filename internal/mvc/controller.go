package mvc

// Controller is embedded by concrete controllers and owns their view bag
type Controller struct {
	viewBag *ViewBag
}

// NewController creates a controller with a fresh view bag
func NewController() Controller {
	return Controller{viewBag: NewViewBag()}
}

// ViewBag returns the controller's view bag
func (c *Controller) ViewBag() *ViewBag {
	if c.viewBag == nil {
		c.viewBag = NewViewBag()
	}
	return c.viewBag
}

// View returns a result rendering the named view with the controller's view bag
func (c *Controller) View(name string) *ViewResult {
	return &ViewResult{ViewName: name, ViewBag: c.ViewBag()}
}
