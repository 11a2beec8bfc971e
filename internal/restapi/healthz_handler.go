package restapi

import (
	"net/http"

	"github.com/LHMTR/haruto-information/internal/models"
)

func (api *RestAPI) healthzHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewOKResponse(map[string]string{
		"status": "ok",
		"env":    api.Config.Env.String(),
	}))
}
