package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"github.com/LHMTR/haruto-information/internal/multilingual"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err := webUI.renderer.debug.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "index":
		lines, err := webUI.Catalog.LoadIndex(r.Context())
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = lines
		}
		title = "Line index - " + webUI.Catalog.Source()
	case "line":
		code := r.URL.Query().Get("code")
		detail, err := webUI.Catalog.LoadLine(r.Context(), code)
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = detail.StationList()
		}
		title = "Line " + code + " - stations"
	case "config":
		data = webUI.Config
		title = "Configuration"
	case "languages":
		data = multilingual.Languages
		title = "Languages"
	default:
		data = map[string]string{
			"error": "Please use one of the following: index, line (with code), config, languages.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, title, data)
}
