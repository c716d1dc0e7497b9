package ginserver

import (
	"embed"
	"fmt"
	"html/template"
	"math"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageNames = []string{"home", "search", "room"}

// pageRender keeps one template set per page; each page defines "content"
// inside the shared layout.
type pageRender struct {
	pages map[string]*template.Template
}

func newPageRender() pageRender {
	base := template.Must(template.New("layout.tmpl").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.tmpl"))
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t := template.Must(base.Clone())
		pages[name] = template.Must(t.ParseFS(templateFS, "templates/"+name+".tmpl"))
	}
	return pageRender{pages: pages}
}

func (r pageRender) Instance(name string, data any) render.Render {
	return render.HTML{Template: r.pages[name], Name: "layout", Data: data}
}

var templateFuncs = template.FuncMap{
	"money":      money,
	"monthSteps": monthSteps,
	"guestRow":   guestRow,
}

func monthSteps() []int {
	steps := make([]int, 12)
	for i := range steps {
		steps[i] = i + 1
	}
	return steps
}

type guestRowData struct {
	Field string
	Label string
	Hint  string
	Value int
}

func guestRow(t func(string) string, field, labelKey, hintKey string, value int) guestRowData {
	return guestRowData{Field: field, Label: t(labelKey), Hint: t(hintKey), Value: value}
}

// money renders 120 as "$120" and 99.5 as "$99.50".
func money(symbol string, amount float64) string {
	if amount == math.Trunc(amount) {
		return fmt.Sprintf("%s%.0f", symbol, amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
