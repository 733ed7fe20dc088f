package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"tribaltides/internal/handlers"
	"tribaltides/internal/models"
	"tribaltides/internal/repositories"
	"tribaltides/internal/seed"
	"tribaltides/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv bundles the app under test with handles the assertions need.
type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	imagesDir string
	distDir   string
}

// setupApp builds the full route surface over a fresh in-memory SQLite
// database seeded with the curated catalog. Static directories point at
// per-test temp dirs so their missing/present states can be controlled.
func setupApp(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Booking{},
	))

	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	bookingRepo := repositories.NewGORMBookingRepository(db)

	require.NoError(t, seed.Run(productRepo))

	catalogService := services.NewCatalogService(productRepo)
	orderService := services.NewOrderService(orderRepo, nil) // nil: no event publisher in tests
	bookingService := services.NewBookingService(bookingRepo, nil)

	imagesDir := filepath.Join(t.TempDir(), "images")
	distDir := filepath.Join(t.TempDir(), "dist")

	app := fiber.New()
	api := app.Group("/api")
	handlers.NewProductHandler(catalogService).RegisterRoutes(api)
	handlers.NewCartHandler(catalogService).RegisterRoutes(api)
	handlers.NewOrderHandler(orderService).RegisterRoutes(api)
	handlers.NewBookingHandler(bookingService).RegisterRoutes(api)
	handlers.NewFrontendHandler(imagesDir, distDir).RegisterRoutes(app)

	return &testEnv{app: app, db: db, imagesDir: imagesDir, distDir: distDir}
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func getJSON(t *testing.T, app *fiber.App, path string, out interface{}) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, out interface{}) int {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestListProducts_NoFilters(t *testing.T) {
	env := setupApp(t)

	var products []models.Product
	status := getJSON(t, env.app, "/api/products", &products)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, products, len(seed.Catalog()))
}

func TestListProducts_FilterScenario(t *testing.T) {
	env := setupApp(t)

	// Women's Wear priced 2000-3000 matches Kaftan Dress and Maxi Dress;
	// tightening the upper bound isolates the Kaftan Dress.
	query := url.Values{}
	query.Set("category", "Women's Wear")
	query.Set("min_price", "2000")
	query.Set("max_price", "2500")

	var products []models.Product
	status := getJSON(t, env.app, "/api/products?"+query.Encode(), &products)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, products, 1)
	assert.Equal(t, "Kaftan Dress", products[0].Name)
	assert.Equal(t, 2499.00, products[0].Price)

	// Same price range in a category with nothing there: empty array.
	query.Set("category", "Beauty (Lip Shades)")
	status = getJSON(t, env.app, "/api/products?"+query.Encode(), &products)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, products)
}

func TestListProducts_PriceBoundsInclusive(t *testing.T) {
	env := setupApp(t)

	// Bounds exactly equal to the Kaftan Dress price still include it.
	query := url.Values{}
	query.Set("min_price", "2499")
	query.Set("max_price", "2499")

	var products []models.Product
	status := getJSON(t, env.app, "/api/products?"+query.Encode(), &products)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, products, 1)
	assert.Equal(t, "Kaftan Dress", products[0].Name)
}

func TestListProducts_MaterialSubstring(t *testing.T) {
	env := setupApp(t)

	query := url.Values{}
	query.Set("material", "Linen")

	var products []models.Product
	status := getJSON(t, env.app, "/api/products?"+query.Encode(), &products)
	assert.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Contains(t, p.Material, "Linen")
	}
}

func TestListProducts_BadPriceParamIgnored(t *testing.T) {
	env := setupApp(t)

	// An unparseable bound imposes no constraint, matching the listing
	// route's no-error contract.
	var products []models.Product
	status := getJSON(t, env.app, "/api/products?min_price=abc", &products)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, products, len(seed.Catalog()))
}

func TestGetProduct(t *testing.T) {
	env := setupApp(t)

	var product models.Product
	status := getJSON(t, env.app, "/api/products/1", &product)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, uint(1), product.ID)
	assert.Equal(t, "Kaftan Dress", product.Name)

	status = getJSON(t, env.app, "/api/products/9999", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// A malformed ID never names an existing product.
	status = getJSON(t, env.app, "/api/products/not-a-number", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListCategories_Distinct(t *testing.T) {
	env := setupApp(t)

	distinct := make(map[string]bool)
	for _, p := range seed.Catalog() {
		distinct[p.Category] = true
	}

	var categories []string
	status := getJSON(t, env.app, "/api/categories", &categories)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, categories, len(distinct))

	seen := make(map[string]int)
	for _, c := range categories {
		seen[c]++
		assert.Equal(t, 1, seen[c], "category %q appears more than once", c)
	}
}

func TestCartValidate(t *testing.T) {
	env := setupApp(t)

	var result map[string]interface{}
	status := postJSON(t, env.app, "/api/cart", fiber.Map{"product_id": 1, "quantity": 3}, &result)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, float64(3), result["quantity"])
	product := result["product"].(map[string]interface{})
	assert.Equal(t, "Kaftan Dress", product["name"])

	// Quantity defaults to 1 when omitted.
	status = postJSON(t, env.app, "/api/cart", fiber.Map{"product_id": 2}, &result)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), result["quantity"])

	// An explicit 0 is echoed back as given, not defaulted.
	status = postJSON(t, env.app, "/api/cart", fiber.Map{"product_id": 2, "quantity": 0}, &result)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), result["quantity"])

	// Unknown product: 404.
	status = postJSON(t, env.app, "/api/cart", fiber.Map{"product_id": 9999}, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCartRemove_NoOpAck(t *testing.T) {
	env := setupApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/17", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, true, result["success"])
}

func TestCreateOrder(t *testing.T) {
	env := setupApp(t)

	payload := fiber.Map{
		"customer_name":  "Amina Rao",
		"customer_email": "amina@example.com",
		"address":        "12 Shoreline Road",
		"total_price":    6997.00,
		"items": []fiber.Map{
			{"product_id": 1, "quantity": 2},
			{"product_id": 4, "quantity": 1},
		},
	}

	var result map[string]interface{}
	status := postJSON(t, env.app, "/api/orders", payload, &result)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, result["success"])
	orderID := uint(result["order_id"].(float64))
	assert.NotZero(t, orderID)

	var itemCount int64
	require.NoError(t, env.db.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&itemCount).Error)
	assert.Equal(t, int64(2), itemCount)
}

func TestCreateOrder_MissingEmail_NoPartialWrite(t *testing.T) {
	env := setupApp(t)

	payload := fiber.Map{
		"customer_name": "Amina Rao",
		"address":       "12 Shoreline Road",
		"total_price":   6997.00,
		"items": []fiber.Map{
			{"product_id": 1, "quantity": 2},
		},
	}

	var result map[string]interface{}
	status := postJSON(t, env.app, "/api/orders", payload, &result)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, result, "error")

	// Atomicity: neither the order nor any item row was persisted.
	var orderCount, itemCount int64
	require.NoError(t, env.db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, env.db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestCreateOrder_MissingItemsKey(t *testing.T) {
	env := setupApp(t)

	payload := fiber.Map{
		"customer_name":  "Amina Rao",
		"customer_email": "amina@example.com",
		"address":        "12 Shoreline Road",
		"total_price":    6997.00,
	}
	status := postJSON(t, env.app, "/api/orders", payload, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// An explicitly empty list is accepted, and so is a present zero
	// total: only absence fails the presence checks.
	payload["items"] = []fiber.Map{}
	payload["total_price"] = 0
	status = postJSON(t, env.app, "/api/orders", payload, nil)
	assert.Equal(t, http.StatusCreated, status)
}

func TestCreateBooking(t *testing.T) {
	env := setupApp(t)

	payload := fiber.Map{
		"name":  "Jordan Lee",
		"date":  "2026-09-14",
		"time":  "15:30",
		"style": "Neo Tribal Minimal",
	}

	var result map[string]interface{}
	status := postJSON(t, env.app, "/api/book-tattoo", payload, &result)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, result["success"])
	assert.NotZero(t, result["booking_id"])

	// Missing time: 400 with an error message.
	status = postJSON(t, env.app, "/api/book-tattoo", fiber.Map{"name": "Jordan Lee", "date": "2026-09-14"}, &result)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, result, "error")
}

func TestBookings_DoubleBookingAndListing(t *testing.T) {
	env := setupApp(t)

	first := fiber.Map{"name": "Jordan Lee", "date": "2026-09-14", "time": "15:30", "style": "Neo Tribal Minimal"}
	second := fiber.Map{"name": "Casey Moana", "date": "2026-09-14", "time": "15:30", "style": "Wave Stripe"}

	assert.Equal(t, http.StatusCreated, postJSON(t, env.app, "/api/book-tattoo", first, nil))
	assert.Equal(t, http.StatusCreated, postJSON(t, env.app, "/api/book-tattoo", second, nil))

	var bookings []map[string]interface{}
	status := getJSON(t, env.app, "/api/bookings", &bookings)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, bookings, 2)
	assert.Equal(t, "Jordan Lee", bookings[0]["name"])
	assert.Equal(t, "Casey Moana", bookings[1]["name"])
	for _, b := range bookings {
		created, ok := b["created_at"].(string)
		assert.True(t, ok, "created_at should be an ISO-8601 string")
		assert.NotEmpty(t, created)
	}
}

func TestStaticImages(t *testing.T) {
	env := setupApp(t)

	// Directory missing entirely: 404.
	status := getJSON(t, env.app, "/static/images/products/kaftan_dress.jpg", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Existing file is served.
	productDir := filepath.Join(env.imagesDir, "products")
	require.NoError(t, os.MkdirAll(productDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(productDir, "kaftan_dress.jpg"), []byte("jpeg-bytes"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/static/images/products/kaftan_dress.jpg", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))

	// Missing file inside an existing directory: 404.
	status = getJSON(t, env.app, "/static/images/products/missing.jpg", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Traversal out of the images root is rejected.
	status = getJSON(t, env.app, "/static/images/..%2f..%2fetc%2fpasswd", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSPAFallback(t *testing.T) {
	env := setupApp(t)

	// No build output: 503.
	status := getJSON(t, env.app, "/", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	require.NoError(t, os.MkdirAll(env.distDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.distDir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(env.distDir, "app.js"), []byte("console.log(1)"), 0o644))

	// Root serves the index document.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<html>app</html>", string(body))

	// Real asset files are served directly.
	req = httptest.NewRequest(http.MethodGet, "/app.js", nil)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "console.log(1)", string(body))

	// Unmatched client-side routes fall back to the index document.
	req = httptest.NewRequest(http.MethodGet, "/book-tattoo", nil)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<html>app</html>", string(body))
}
