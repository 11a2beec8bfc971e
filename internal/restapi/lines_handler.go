package restapi

import (
	"net/http"

	"github.com/LHMTR/haruto-information/internal/directory"
	"github.com/LHMTR/haruto-information/internal/models"
	"github.com/LHMTR/haruto-information/internal/multilingual"
	"github.com/LHMTR/haruto-information/internal/utils"
)

func (api *RestAPI) linesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := multilingual.FromContext(ctx)

	query, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("q"))
	if err != nil {
		fieldErrors := map[string][]string{
			"q": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	lines, err := api.Catalog.LoadIndex(ctx)
	if err != nil {
		api.badGatewayResponse(w, r, err)
		return
	}

	view := directory.Build(lines, directory.Options{
		Query:    query,
		GroupBy:  directory.ParseGroupBy(r.URL.Query().Get("group")),
		Language: lang,
	})

	api.sendResponse(w, r, models.NewEntryResponse(view, lang.Code()))
}
