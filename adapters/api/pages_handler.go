package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ksdhruvateja/grocera-sub002/core/usecases/store_pages"
)

//go:embed web/templates/*.html
var templateFS embed.FS

var (
	aboutTemplate     = parsePage("about.html")
	adminInfoTemplate = parsePage("admin_info.html")
)

func parsePage(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "web/templates/layout.html", "web/templates/"+name))
}

type PagesHandler struct {
	pagesUsecase *store_pages.StorePagesUsecase
	log          logrus.FieldLogger
}

func NewPagesHandler(pagesUsecase *store_pages.StorePagesUsecase, log logrus.FieldLogger) *PagesHandler {
	return &PagesHandler{
		pagesUsecase: pagesUsecase,
		log:          log,
	}
}

func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, aboutTemplate, h.pagesUsecase.GetAboutPage())
}

func (h *PagesHandler) AdminInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	h.render(w, adminInfoTemplate, h.pagesUsecase.GetAdminInfo())
}

// render executes into a buffer first so a template error never leaves a
// half written page behind.
func (h *PagesHandler) render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.Errorf("Render %s: %v", tmpl.Name(), err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
