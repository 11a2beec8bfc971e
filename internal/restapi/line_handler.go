package restapi

import (
	"errors"
	"net/http"

	"github.com/LHMTR/haruto-information/internal/catalog"
	"github.com/LHMTR/haruto-information/internal/models"
	"github.com/LHMTR/haruto-information/internal/multilingual"
	"github.com/LHMTR/haruto-information/internal/utils"
)

func (api *RestAPI) lineHandler(w http.ResponseWriter, r *http.Request) {
	code := utils.ExtractIDFromParams(r, "code")

	if err := utils.ValidateID(code); err != nil {
		fieldErrors := map[string][]string{
			"code": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ctx := r.Context()
	lang := multilingual.FromContext(ctx)

	detail, err := api.Catalog.LoadLine(ctx, code)
	if errors.Is(err, catalog.ErrLineNotFound) || errors.Is(err, catalog.ErrInvalidLineCode) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.badGatewayResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.ResolveLineDetail(detail, lang), lang.Code()))
}
