package restapi

import (
	"net/http"

	"github.com/LHMTR/haruto-information/internal/models"
	"github.com/LHMTR/haruto-information/internal/multilingual"
)

type languageEntry struct {
	Code   string `json:"code"`
	Tag    string `json:"tag"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func (api *RestAPI) languagesHandler(w http.ResponseWriter, r *http.Request) {
	lang := multilingual.FromContext(r.Context())

	list := make([]languageEntry, 0, len(multilingual.Languages))
	for _, l := range multilingual.Languages {
		list = append(list, languageEntry{
			Code:   l.Code(),
			Tag:    l.Tag().String(),
			Name:   l.DisplayName(),
			Active: l == lang,
		})
	}

	api.sendResponse(w, r, models.NewListResponse(list, lang.Code()))
}
