package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oggyb/portfolio-inbox/internal/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondJSON_Options(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusOK, []int{}, WithCount(0), WithNote("demo"), WithMessage("ok"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 0.0, body["count"])
	assert.Equal(t, "demo", body["note"])
	assert.Equal(t, "ok", body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRespondJSON_OmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusOK, nil)

	body := decode(t, rec)
	assert.NotContains(t, body, "count")
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body, "errors")
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondError(rec, http.StatusNotFound, "Message not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Message not found", body["message"])
}

func TestRespondValidation(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondValidation(rec, []request.FieldError{{Field: "name", Message: "name is required"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	errs := body["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].(map[string]any)["field"])
}
