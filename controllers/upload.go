package controllers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"faithshop/pkg/logx"
)

const (
	maxUploadFiles    = 5
	maxUploadFileSize = 5 << 20 // 5 MiB per file

	// UploadBodyLimit leaves headroom for five full-size files plus
	// multipart framing; the per-file limit still applies.
	UploadBodyLimit = 32 << 20
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadController stores product images under the static directory and
// hands back the URLs they will be served from.
type UploadController struct {
	StaticDir string
	BaseURL   string
}

func NewUploadController(staticDir, baseURL string) *UploadController {
	return &UploadController{StaticDir: staticDir, BaseURL: strings.TrimRight(baseURL, "/")}
}

// UploadImages accepts up to 5 raster images on the multipart field
// "images" and returns {urls: [...]}.
//
// POST /api/upload
func (uc *UploadController) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No files uploaded"})
	}

	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No files uploaded"})
	}
	if len(files) > maxUploadFiles {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Too many files: max %d per upload", maxUploadFiles),
		})
	}
	for _, f := range files {
		if err := checkImageFile(f); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	dir := filepath.Join(uc.StaticDir, "images", "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logx.Error().Err(err).Str("dir", dir).Msg("create upload dir failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload storage failed"})
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		name := uuid.NewString() + strings.ToLower(filepath.Ext(f.Filename))
		if err := c.SaveFile(f, filepath.Join(dir, name)); err != nil {
			logx.Error().Err(err).Str("file", f.Filename).Msg("save upload failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload storage failed"})
		}
		urls = append(urls, uc.BaseURL+"/static/images/products/"+name)
	}

	return c.JSON(fiber.Map{"urls": urls})
}

func checkImageFile(f *multipart.FileHeader) error {
	if f.Size > maxUploadFileSize {
		return fmt.Errorf("%s exceeds the %d MB size limit", f.Filename, maxUploadFileSize>>20)
	}
	ext := strings.ToLower(filepath.Ext(f.Filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("%s is not an allowed image type", f.Filename)
	}
	return nil
}
