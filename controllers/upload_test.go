package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faithshop/controllers"
)

func newUploadApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	app := fiber.New(fiber.Config{BodyLimit: controllers.UploadBodyLimit})
	uc := controllers.NewUploadController(dir, "http://test")
	app.Post("/api/upload", uc.UploadImages)
	return app, dir
}

func multipartBody(t *testing.T, names []string, size int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range names {
		part, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0xFF}, size))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postUpload(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestUploadSavesFilesAndReturnsURLs(t *testing.T) {
	app, dir := newUploadApp(t)

	body, ct := multipartBody(t, []string{"one.jpg", "two.PNG"}, 128)
	resp := postUpload(t, app, body, ct)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		URLs []string `json:"urls"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.URLs, 2)

	for _, u := range out.URLs {
		assert.True(t, strings.HasPrefix(u, "http://test/static/images/products/"))
		name := u[strings.LastIndex(u, "/")+1:]
		_, err := os.Stat(filepath.Join(dir, "images", "products", name))
		assert.NoError(t, err)
	}
	assert.True(t, strings.HasSuffix(out.URLs[1], ".png"))
}

func TestUploadRejectsNoFiles(t *testing.T) {
	app, _ := newUploadApp(t)

	body, ct := multipartBody(t, nil, 0)
	resp := postUpload(t, app, body, ct)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No files uploaded", decodeMap(t, resp)["error"])
}

func TestUploadRejectsTooManyFiles(t *testing.T) {
	app, _ := newUploadApp(t)

	names := []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"}
	body, ct := multipartBody(t, names, 16)
	resp := postUpload(t, app, body, ct)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectsBadType(t *testing.T) {
	app, dir := newUploadApp(t)

	body, ct := multipartBody(t, []string{"script.exe"}, 16)
	resp := postUpload(t, app, body, ct)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeMap(t, resp)["error"], "script.exe")

	// Nothing was written.
	_, err := os.Stat(filepath.Join(dir, "images", "products"))
	assert.True(t, os.IsNotExist(err))
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	app, _ := newUploadApp(t)

	body, ct := multipartBody(t, []string{"big.jpg"}, controllers.MaxUploadFileSize+1)
	resp := postUpload(t, app, body, ct)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeMap(t, resp)["error"], "size limit")
}
