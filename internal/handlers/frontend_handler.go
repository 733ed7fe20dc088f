package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FrontendHandler serves the built single-page frontend and the static
// product/category images from disk.
type FrontendHandler struct {
	imagesRoot string
	distRoot   string
}

// NewFrontendHandler creates a new FrontendHandler. imagesRoot is the
// directory holding product/category images, distRoot the built frontend.
func NewFrontendHandler(imagesRoot, distRoot string) *FrontendHandler {
	return &FrontendHandler{
		imagesRoot: imagesRoot,
		distRoot:   distRoot,
	}
}

// RegisterRoutes registers the static and SPA routes. These must be
// registered after the API routes: the SPA route is a catch-all.
func (h *FrontendHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/static/images/*", h.HandleStaticImage)
	app.Get("/*", h.HandleSPA)
}

// HandleStaticImage serves a single image file. A missing images
// directory and a missing file both answer 404.
func (h *FrontendHandler) HandleStaticImage(c *fiber.Ctx) error {
	if info, err := os.Stat(h.imagesRoot); err != nil || !info.IsDir() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Static images directory missing",
		})
	}

	path, ok := h.resolve(h.imagesRoot, c.Params("*"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Image not found",
		})
	}
	return c.SendFile(path)
}

// HandleSPA serves the built frontend: the requested file when it exists
// under the dist directory, index.html otherwise so client-side routing
// keeps working. Missing build artifacts answer 503.
func (h *FrontendHandler) HandleSPA(c *fiber.Ctx) error {
	if info, err := os.Stat(h.distRoot); err != nil || !info.IsDir() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Frontend not built. Please run 'npm run build' in the frontend directory.",
		})
	}

	if requested := c.Params("*"); requested != "" {
		if path, ok := h.resolve(h.distRoot, requested); ok {
			return c.SendFile(path)
		}
	}

	index := filepath.Join(h.distRoot, "index.html")
	if info, err := os.Stat(index); err == nil && !info.IsDir() {
		return c.SendFile(index)
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "Frontend not found. Please build the frontend first.",
	})
}

// resolve joins a requested path onto root, rejecting traversal outside
// the root and paths that do not name an existing regular file.
func (h *FrontendHandler) resolve(root, requested string) (string, bool) {
	path := filepath.Join(root, filepath.Clean("/"+requested))
	if !strings.HasPrefix(path, filepath.Clean(root)+string(os.PathSeparator)) {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
