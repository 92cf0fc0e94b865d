package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusInternalServerError, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "*errors.errorString", body.ClassName)
	assert.Equal(t, "boom", body.ExMessage)
}

func TestWriteValidationErrors_HeaderAndEcho(t *testing.T) {
	rec := httptest.NewRecorder()
	entity := map[string]string{"name": ""}
	WriteValidationErrors(rec, entity, map[string]string{"name": "must not be empty"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var hdr map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("errors")), &hdr))
	assert.Equal(t, "must not be empty", hdr["name"])

	// El body es la entidad recibida, no el detalle de errores.
	var echoed map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &echoed))
	assert.Equal(t, entity, echoed)
}

func TestDecode_RejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))

	var v map[string]any
	err := Decode(req, &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json body")
}
