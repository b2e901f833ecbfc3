package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"strconv"

	appmiddleware "github.com/socialcontract/app/internal/middleware"
)

// Title is the application name shown on the placeholder page.
const Title = "Social Contract App"

//go:embed home.html
var homeHTML string

var homeTmpl = template.Must(template.New("home").Parse(homeHTML))

// renderHome executes the page template once at startup. The template and its
// data are both fixed, so a render failure is a programming error.
func renderHome() []byte {
	var buf bytes.Buffer
	if err := homeTmpl.Execute(&buf, struct{ Title string }{Title: Title}); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// HomeHandler serves the placeholder landing page. Every request receives the
// same pre-rendered document.
func HomeHandler() http.HandlerFunc {
	page := renderHome()
	return func(w http.ResponseWriter, r *http.Request) {
		appmiddleware.LogInfo(r.Context(), "home page served")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(page)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	}
}
