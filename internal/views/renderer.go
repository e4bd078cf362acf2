package views

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"
)

const layoutFile = "layout.html"

// ErrViewNotFound is returned when no template exists for a view name
var ErrViewNotFound = errors.New("view not found")

//go:embed templates/*.html
var embedded embed.FS

// Renderer executes views wrapped in the shared layout
type Renderer struct {
	views  map[string]*template.Template
	logger *zap.SugaredLogger
}

// NewRenderer parses the embedded templates
func NewRenderer(logger *zap.SugaredLogger) (*Renderer, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}
	return NewRendererFS(sub, logger)
}

// NewRendererFS parses layout.html and one template per view from fsys
func NewRendererFS(fsys fs.FS, logger *zap.SugaredLogger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	files, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	r := &Renderer{
		views:  make(map[string]*template.Template),
		logger: logger,
	}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		tmpl, err := template.ParseFS(fsys, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse view %s: %w", file, err)
		}
		name := strings.TrimSuffix(path.Base(file), path.Ext(file))
		r.views[name] = tmpl
	}

	logger.Debugw("Views loaded", "count", len(r.views))
	return r, nil
}

// Render executes the named view
func (r *Renderer) Render(w io.Writer, name string, data map[string]any) error {
	tmpl, ok := r.views[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrViewNotFound, name)
	}
	if err := tmpl.ExecuteTemplate(w, layoutFile, data); err != nil {
		r.logger.Errorw("Failed to execute view", "view", name, "error", err)
		return fmt.Errorf("failed to execute view %s: %w", name, err)
	}
	return nil
}

// Has reports whether a view with the given name exists
func (r *Renderer) Has(name string) bool {
	_, ok := r.views[name]
	return ok
}
