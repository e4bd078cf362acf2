package mvc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Common errors
var (
	ErrNilResult  = errors.New("action returned no result")
	ErrNoRenderer = errors.New("no view renderer configured")
	ErrEmptyView  = errors.New("view name is empty")
)

// ViewRenderer executes a named view with the given data
type ViewRenderer interface {
	Render(w io.Writer, name string, data map[string]any) error
}

// ResultContext is what an ActionResult needs to produce a response
type ResultContext struct {
	Writer   http.ResponseWriter
	Request  *http.Request
	Renderer ViewRenderer
}

// ActionResult is the outcome of a controller action
type ActionResult interface {
	Execute(ctx ResultContext) error
}

// ViewResult renders a named view with the controller's view bag
type ViewResult struct {
	ViewName   string
	StatusCode int
	ViewBag    *ViewBag
}

// Execute renders the view into the response
func (r *ViewResult) Execute(ctx ResultContext) error {
	if r.ViewName == "" {
		return ErrEmptyView
	}
	if ctx.Renderer == nil {
		return ErrNoRenderer
	}

	status := r.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	var data map[string]any
	if r.ViewBag != nil {
		data = r.ViewBag.Data()
	}

	// Render into a buffer so a template error can still produce a clean 500
	var buf bytes.Buffer
	if err := ctx.Renderer.Render(&buf, r.ViewName, data); err != nil {
		return fmt.Errorf("failed to render view %q: %w", r.ViewName, err)
	}

	ctx.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	ctx.Writer.WriteHeader(status)
	if _, err := ctx.Writer.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write view %q: %w", r.ViewName, err)
	}
	return nil
}
