package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"venuehub/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"venues", "book", "booking_success", "my_bookings", "home", "chat", "error",
}

type views map[string]*template.Template

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"date":  func(t time.Time) string { return t.Format("02/01/2006") },
}

func parseViews() (views, error) {
	v := make(views, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("base.html").Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		v[name] = t
	}
	return v, nil
}

// page is the data every template receives; Data is page specific.
type page struct {
	T      func(key string) string
	Locale string
	User   *entities.User
	Flash  string
	Title  string
	Data   any
}

func (h *Handler) render(c *gin.Context, status int, name, title string, data any) {
	locale := localeOf(c)
	user, _ := currentUser(c)
	p := page{
		T:      func(key string) string { return h.tr.T(locale, key, nil) },
		Locale: locale,
		User:   user,
		Flash:  popFlash(c),
		Title:  title,
		Data:   data,
	}
	c.Render(status, render.HTML{Template: h.views[name], Name: "base", Data: p})
}

// renderError shows the error page with the status and message err maps to.
func (h *Handler) renderError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logError(c, err)
	}
	h.render(c, status, "error", h.t(c, "ui.error", nil), h.errorMessage(c, err))
}
