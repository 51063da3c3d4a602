package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jframirez/Bodegas-api/internal/application/dto"
	"github.com/jframirez/Bodegas-api/internal/application/inventory"
	"github.com/jframirez/Bodegas-api/internal/infrastructure/memory"
	apphttp "github.com/jframirez/Bodegas-api/internal/interfaces/http"
	"github.com/jframirez/Bodegas-api/pkg/clock"
	"github.com/jframirez/Bodegas-api/pkg/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación Fiber completa sobre el backend en
// memoria: middlewares, rutas de la API, /health y /metrics.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.NewStore()
	ledger, err := inventory.NewLedger(context.Background(),
		store.TxRunner(), store.Warehouses(), store.Items(), store.Movements(),
		clock.NewSystem(),
	)
	require.NoError(t, err, "el ledger debe construirse sobre el backend en memoria")

	m := metrics.New()
	app := fiber.New()
	app.Use(apphttp.AccessLog(zerolog.Nop()))
	app.Use(apphttp.Metrics(m))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "bodegas-api-test"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	apphttp.Router(app, apphttp.RouterDeps{Ledger: ledger})
	return app
}

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode deserializa el cuerpo de la respuesta en out.
func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// createWarehouse da de alta una bodega y devuelve su representación.
func createWarehouse(t *testing.T, app *fiber.App, name string) dto.WarehouseResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/warehouses", dto.CreateWarehouseRequest{Name: name})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "crear bodega debe responder 201")
	var out dto.WarehouseResponse
	decode(t, resp, &out)
	return out
}

// addStock agrega existencias y devuelve el ítem resultante.
func addStock(t *testing.T, app *fiber.App, warehouseID uint64, name string, qty uint64) dto.StockItemResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/stock", dto.AddStockItemRequest{
		WarehouseID: warehouseID, ItemName: name, Quantity: qty,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "agregar existencias debe responder 201")
	var out dto.StockItemResponse
	decode(t, resp, &out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Bodegas
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouse_CrearYConsultar(t *testing.T) {
	app := buildTestApp(t)

	wh := createWarehouse(t, app, "Bodega Central")
	assert.Equal(t, uint64(1), wh.ID, "la primera bodega recibe el id 1")
	assert.Equal(t, "Bodega Central", wh.Name)
	assert.False(t, wh.CreatedAt.IsZero())

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/warehouses/%d", wh.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.WarehouseResponse
	decode(t, resp, &got)
	assert.Equal(t, wh.ID, got.ID)
}

func TestWarehouse_NombreVacio_Retorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/warehouses", dto.CreateWarehouseRequest{Name: "   "})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION", "el código de error debe ser VALIDATION")
}

func TestWarehouse_CuerpoMalformado_Retorna400(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/warehouses", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

func TestWarehouse_Inexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/warehouses/42", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestWarehouse_IDNoNumerico_Retorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/warehouses/abc", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_ID")
}

func TestWarehouse_EliminarEnCascada(t *testing.T) {
	app := buildTestApp(t)

	wh := createWarehouse(t, app, "Efímera")
	addStock(t, app, wh.ID, "Tornillos", 10)
	addStock(t, app, wh.ID, "Tuercas", 5)

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/warehouses/%d", wh.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var removed dto.WarehouseResponse
	decode(t, resp, &removed)
	assert.Equal(t, wh.ID, removed.ID, "la respuesta trae la bodega eliminada")

	// La bodega ya no existe; sus existencias quedan como lista vacía.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/warehouses/%d", wh.ID), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/warehouses/%d/stock", wh.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var stock []dto.StockItemResponse
	decode(t, resp, &stock)
	assert.Empty(t, stock, "las existencias se eliminan junto con la bodega")
}

func TestWarehouse_ListadoConStock(t *testing.T) {
	app := buildTestApp(t)

	whA := createWarehouse(t, app, "Norte")
	whB := createWarehouse(t, app, "Sur")
	addStock(t, app, whA.ID, "Cables", 7)

	resp := doJSON(t, app, http.MethodGet, "/api/warehouses", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.WarehouseListResponse
	decode(t, resp, &out)

	require.Equal(t, 2, out.Total)
	assert.Equal(t, whA.ID, out.Items[0].Warehouse.ID, "el listado va en orden ascendente de id")
	assert.Len(t, out.Items[0].Stock, 1)
	assert.Equal(t, whB.ID, out.Items[1].Warehouse.ID)
	assert.Empty(t, out.Items[1].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Existencias
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_AgregarFusionaPorNombre(t *testing.T) {
	app := buildTestApp(t)
	wh := createWarehouse(t, app, "Central")

	first := addStock(t, app, wh.ID, "Tornillos", 5)
	second := addStock(t, app, wh.ID, "Tornillos", 3)

	assert.Equal(t, first.ItemID, second.ItemID, "mismo nombre en la misma bodega fusiona sobre el mismo registro")
	assert.Equal(t, uint64(8), second.Quantity)
	assert.NotNil(t, second.UpdatedAt, "la fusión estampa updated_at")
}

func TestStock_BodegaInexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/stock", dto.AddStockItemRequest{
		WarehouseID: 99, ItemName: "Clavos", Quantity: 1,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStock_RetiroParcialYTotal(t *testing.T) {
	app := buildTestApp(t)
	wh := createWarehouse(t, app, "Central")
	item := addStock(t, app, wh.ID, "Cajas", 10)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/stock/%d/decrement", item.ItemID),
		dto.DecrementStockRequest{Quantity: 4})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var after dto.StockItemResponse
	decode(t, resp, &after)
	assert.Equal(t, uint64(6), after.Quantity)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/stock/%d/decrement", item.ItemID),
		dto.DecrementStockRequest{Quantity: 6})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &after)
	assert.Equal(t, uint64(0), after.Quantity, "el retiro total responde con cantidad 0")

	// El registro desapareció del ledger.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/stock/%d", item.ItemID), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStock_RetiroMayorAlDisponible_Retorna409(t *testing.T) {
	app := buildTestApp(t)
	wh := createWarehouse(t, app, "Central")
	item := addStock(t, app, wh.ID, "Cajas", 4)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/stock/%d/decrement", item.ItemID),
		dto.DecrementStockRequest{Quantity: 9})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")
	assert.Contains(t, string(body), "disponible=4", "el mensaje detalla lo disponible")

	// El rechazo no toca el registro.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/stock/%d", item.ItemID), nil)
	var got dto.StockItemResponse
	decode(t, resp, &got)
	assert.Equal(t, uint64(4), got.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)
	whA := createWarehouse(t, app, "Norte")
	whB := createWarehouse(t, app, "Sur")
	item := addStock(t, app, whA.ID, "Cables", 10)

	resp := doJSON(t, app, http.MethodPost, "/api/stock/transfer", dto.TransferStockRequest{
		ItemID: item.ItemID, FromWarehouseID: whA.ID, ToWarehouseID: whB.ID, Quantity: 4,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.TransferResponse
	decode(t, resp, &out)

	assert.NotEmpty(t, out.TransactionID)
	assert.Equal(t, uint64(6), out.Source.Quantity)
	assert.Equal(t, whB.ID, out.Destination.WarehouseID)
	assert.Equal(t, uint64(4), out.Destination.Quantity)
	assert.NotEqual(t, out.Source.ItemID, out.Destination.ItemID,
		"el destino sin ítem homónimo recibe un registro con id propio")
}

func TestTransfer_CantidadCero_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	whA := createWarehouse(t, app, "Norte")
	whB := createWarehouse(t, app, "Sur")
	item := addStock(t, app, whA.ID, "Cables", 10)

	resp := doJSON(t, app, http.MethodPost, "/api/stock/transfer", dto.TransferStockRequest{
		ItemID: item.ItemID, FromWarehouseID: whA.ID, ToWarehouseID: whB.ID, Quantity: 0,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTransfer_ItemDeOtraBodega_Retorna404(t *testing.T) {
	app := buildTestApp(t)
	whA := createWarehouse(t, app, "Norte")
	whB := createWarehouse(t, app, "Sur")
	item := addStock(t, app, whA.ID, "Cables", 10)

	// El ítem vive en whA; declararlo de whB debe rechazarse sin mutar nada.
	resp := doJSON(t, app, http.MethodPost, "/api/stock/transfer", dto.TransferStockRequest{
		ItemID: item.ItemID, FromWarehouseID: whB.ID, ToWarehouseID: whA.ID, Quantity: 1,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/stock/%d", item.ItemID), nil)
	var got dto.StockItemResponse
	decode(t, resp, &got)
	assert.Equal(t, uint64(10), got.Quantity, "un traslado rechazado no deja rastro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Diario y resumen
// ──────────────────────────────────────────────────────────────────────────────

func TestMovements_SobrevivenALaEliminacion(t *testing.T) {
	app := buildTestApp(t)
	wh := createWarehouse(t, app, "Efímera")
	addStock(t, app, wh.ID, "Cajas", 10)

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/warehouses/%d", wh.ID), nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/warehouses/%d/movements", wh.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.MovementListResponse
	decode(t, resp, &out)

	require.Len(t, out.Items, 2, "alta y baja quedan en el diario")
	assert.Equal(t, "OUT", out.Items[0].Type, "el movimiento más reciente va primero")
	assert.Equal(t, int64(-10), out.Items[0].Quantity)
	assert.Equal(t, "IN", out.Items[1].Type)
	assert.Equal(t, int64(10), out.Items[1].Quantity)
}

func TestAnalytics_Summary(t *testing.T) {
	app := buildTestApp(t)
	whA := createWarehouse(t, app, "Norte")
	whB := createWarehouse(t, app, "Sur")
	addStock(t, app, whA.ID, "Cables", 7)
	addStock(t, app, whA.ID, "Cajas", 3)
	addStock(t, app, whB.ID, "Cables", 5)

	resp := doJSON(t, app, http.MethodGet, "/api/analytics/summary", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.SummaryResponse
	decode(t, resp, &out)

	assert.Equal(t, 2, out.WarehouseCount)
	assert.Equal(t, 3, out.ItemCount)
	assert.Equal(t, uint64(15), out.TotalUnits)
	require.Len(t, out.Warehouses, 2)
	assert.Equal(t, uint64(10), out.Warehouses[0].TotalUnits)
	assert.Equal(t, uint64(5), out.Warehouses[1].TotalUnits)
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	decode(t, resp, &out)
	assert.Equal(t, "ok", out["status"])
}

func TestMetrics_CuentaPeticiones(t *testing.T) {
	app := buildTestApp(t)

	createWarehouse(t, app, "Norte")

	resp := doJSON(t, app, http.MethodGet, "/metrics", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "bodegas_http_requests_total",
		"el contador de peticiones debe estar expuesto")
}
