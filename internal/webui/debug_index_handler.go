package webui

import (
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(contentFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	dataset := webUI.Manager.GetDataset()

	switch dataType {
	case "undernourishment":
		data = dataset.Undernourishment
		title = "SDG 2 Data - Undernourishment Rates"
	case "production":
		data = dataset.Production
		title = "SDG 2 Data - Crop Production"
	case "food-security":
		data = dataset.Security
		title = "SDG 2 Data - Food Security Assessments"
	case "nutrition":
		data = dataset.Nutrition
		title = "SDG 2 Data - Nutrition Rates"
	default:
		data = map[string]string{
			"error": "Please use one of the following: undernourishment, production, food-security, nutrition.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
