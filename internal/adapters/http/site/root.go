// Package site serves the embedded front-end under /static and redirects
// the root path to it.
package site

import (
	"context"
	"net/http"
)

const indexPath = "/static/index.html"

// Register attaches the static asset routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.FileServer(FS())
	mux.Handle("/static/", http.StripPrefix("/static/", files))
	mux.HandleFunc("/", handleRoot)
}

// handleRoot redirects GET / to the front-end index. The "/" pattern also
// catches every otherwise-unmatched path, which stays a plain 404.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
}
