package restaurant

import (
	"embed"
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	template "github.com/goliatone/go-template"
)

//go:embed templates/*.html templates/partials/*.html
var embeddedTemplates embed.FS

// Renderer is the template engine the controller renders screens with.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// NewTemplateRenderer loads the bundled screen templates. When overrideDir
// is set, files under it shadow the bundled ones with the same relative
// path, e.g. <overrideDir>/templates/partials/nav.html.
func NewTemplateRenderer(overrideDir string) (Renderer, error) {
	var fsys fs.FS = embeddedTemplates
	if overrideDir != "" {
		if _, err := os.Stat(overrideDir); err != nil {
			return nil, err
		}
		fsys = overlayFS{top: os.DirFS(overrideDir), base: embeddedTemplates}
	}
	root, err := fs.Sub(fsys, "templates")
	if err != nil {
		return nil, err
	}
	return template.NewRenderer(
		template.WithFS(root),
		template.WithExtension(".html"),
	)
}

// overlayFS resolves names against top first, then base.
type overlayFS struct {
	top  fs.FS
	base fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.top.Open(name)
	if err == nil {
		info, statErr := f.Stat()
		if statErr == nil && !info.IsDir() {
			return f, nil
		}
		f.Close()
	}
	return o.base.Open(name)
}

func (o overlayFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(o.base, name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	extra, topErr := fs.ReadDir(o.top, name)
	if topErr != nil && err != nil {
		return nil, err
	}
	for _, e := range extra {
		if !slices.ContainsFunc(entries, func(b fs.DirEntry) bool { return b.Name() == e.Name() }) {
			entries = append(entries, e)
		}
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int { return strings.Compare(a.Name(), b.Name()) })
	return entries, nil
}
