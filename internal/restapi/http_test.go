package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"github.com/LHMTR/haruto-information/internal/app"
	"github.com/LHMTR/haruto-information/internal/appconf"
	"github.com/LHMTR/haruto-information/internal/logging"
	"github.com/LHMTR/haruto-information/internal/models"
)

// createTestApi creates a RestAPI reading the line fixtures.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithSource(t, models.GetFixturePath(t, "information"))
}

func createTestApiWithSource(t *testing.T, source string) *RestAPI {
	t.Helper()

	config := appconf.DefaultConfig()
	config.Env = appconf.EnvFlagToEnvironment("test")
	config.DataSource = source
	config.RateLimit = 100

	application, err := app.New(config, nil)
	require.NoError(t, err)

	api := NewRestAPI(application)
	t.Cleanup(api.Close)
	return api
}

func newTestHandler(api *RestAPI) http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return api.WithMiddleware(router)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	server := httptest.NewServer(newTestHandler(api))
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}
