package webui

import (
	"io/fs"
	"net/http"
)

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", webUI.overviewHandler)
	mux.HandleFunc("GET /undernourishment", webUI.undernourishmentHandler)
	mux.HandleFunc("GET /production", webUI.productionHandler)
	mux.HandleFunc("GET /food-security", webUI.foodSecurityHandler)
	mux.HandleFunc("GET /nutrition", webUI.nutritionHandler)
	mux.HandleFunc("GET /regional-comparison", webUI.regionalComparisonHandler)
	mux.HandleFunc("GET /debug/", webUI.debugIndexHandler)

	staticFS, err := fs.Sub(contentFS, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
}
