package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactsheet/gridcell"
	"github.com/contactsheet/gridcell/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.Init()
	os.Exit(m.Run())
}

func sheetB64(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 300, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 300; x++ {
			v := uint8(128)
			if (x >= 98 && x < 102) || (x >= 198 && x < 202) ||
				(y >= 98 && y < 102) || (y >= 198 && y < 202) {
				v = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func newTestRouter() http.Handler {
	return NewRouter(NewHandler(gridcell.New()))
}

func postExtract(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleExtract(t *testing.T) {
	router := newTestRouter()

	body, err := json.Marshal(map[string]any{
		"image_b64": sheetB64(t),
		"x":         0.5,
		"y":         0.5,
	})
	require.NoError(t, err)

	rec := postExtract(t, router, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp extractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Row)
	assert.Equal(t, 1, resp.Col)
	assert.Equal(t, "png", resp.Format)

	data, err := base64.StdEncoding.DecodeString(resp.ImageB64)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, resp.W, decoded.Bounds().Dx())
	assert.Equal(t, resp.H, decoded.Bounds().Dy())
}

func TestHandleExtractInvalidBody(t *testing.T) {
	rec := postExtract(t, newTestRouter(), "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExtractClickOutOfRange(t *testing.T) {
	rec := postExtract(t, newTestRouter(), `{"image_b64":"aGk=","x":1.5,"y":0.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExtractMissingImage(t *testing.T) {
	rec := postExtract(t, newTestRouter(), `{"x":0.5,"y":0.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExtractUndecodablePayload(t *testing.T) {
	garbage := base64.StdEncoding.EncodeToString([]byte("not an image"))
	rec := postExtract(t, newTestRouter(), `{"image_b64":"`+garbage+`","x":0.5,"y":0.5}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "could not extract this region", resp.Error)
}

func TestHandleHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
