package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the page templates embedded in the binary.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("site").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return &Renderer{tmpl: t}, nil
}

// Loading writes the document head and the loading placeholder. It is sent
// before the catalog is fetched so the visitor sees the page start at once.
func (r *Renderer) Loading(w io.Writer, brand string) error {
	return r.tmpl.ExecuteTemplate(w, "loading", brand)
}

// Home writes the page body. It hides the placeholder written by Loading.
func (r *Renderer) Home(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "home", p)
}
