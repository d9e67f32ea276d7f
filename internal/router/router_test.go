package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"acopiapp/internal/config"
	"acopiapp/internal/dto"
	"acopiapp/internal/ledger"
	"acopiapp/internal/model"
	"acopiapp/internal/router"
	"acopiapp/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoServidor(t *testing.T) http.Handler {
	t.Helper()
	st, err := store.Abrir(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{
		Port:           0,
		Env:            "production",
		DataPath:       t.TempDir(),
		PDFStoragePath: t.TempDir(),
		NombreNegocio:  "Acopiapp Pruebas",
	}
	return router.New(cfg, st)
}

func hacer(t *testing.T, h http.Handler, metodo, ruta string, cuerpo any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if cuerpo != nil {
		raw, err := json.Marshal(cuerpo)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(metodo, ruta, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodificar[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "cuerpo: %s", rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	h := nuevoServidor(t)
	rec := hacer(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Recorre el flujo completo de cobranza: alta de cliente, venta con entrega
// inicial, abono global y estado de cuenta.
func TestFlujoDeCobranza(t *testing.T) {
	h := nuevoServidor(t)

	rec := hacer(t, h, http.MethodPost, "/v1/clientes", map[string]any{
		"nombre":    "Almacén El Sol",
		"direccion": "Av. Principal 120",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cliente := decodificar[model.Cliente](t, rec)
	require.NotEmpty(t, cliente.ID)

	rec = hacer(t, h, http.MethodPost, "/v1/ventas", map[string]any{
		"fecha":           "2025-01-10",
		"cliente_id":      cliente.ID,
		"precio":          2.5,
		"cantidad":        2,
		"unidad":          "baldes",
		"entrega_inicial": 100,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	venta := decodificar[model.Venta](t, rec)
	assert.True(t, venta.MontoTotal.Equal(decimal.NewFromInt(500)))
	require.Len(t, venta.Pagos, 1)

	rec = hacer(t, h, http.MethodGet, "/v1/clientes/"+cliente.ID+"/deuda", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	deuda := decodificar[dto.DeudaClienteResponse](t, rec)
	assert.True(t, deuda.Deuda.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, 1, deuda.VentasPendientes)

	rec = hacer(t, h, http.MethodPost, "/v1/clientes/"+cliente.ID+"/abonos", map[string]any{
		"monto": 150,
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = hacer(t, h, http.MethodGet, "/v1/clientes/"+cliente.ID+"/estado-cuenta", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	filas := decodificar[[]ledger.MovimientoCuenta](t, rec)
	require.NotEmpty(t, filas)
	assert.True(t, filas[len(filas)-1].Saldo.Equal(decimal.NewFromInt(250)))

	// El resumen global refleja la misma deuda.
	rec = hacer(t, h, http.MethodGet, "/v1/deudas", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resumen := decodificar[[]dto.DeudaClienteResponse](t, rec)
	require.Len(t, resumen, 1)
	assert.True(t, resumen[0].Deuda.Equal(decimal.NewFromInt(250)))
}

func TestVentas_ValidacionYRechazos(t *testing.T) {
	h := nuevoServidor(t)

	// Sin campos obligatorios
	rec := hacer(t, h, http.MethodPost, "/v1/ventas", map[string]any{"precio": 2.5})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Cliente inexistente
	rec = hacer(t, h, http.MethodPost, "/v1/ventas", map[string]any{
		"fecha":      "2025-01-10",
		"cliente_id": "nadie",
		"precio":     2.5,
		"cantidad":   1,
		"unidad":     "unidades",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAbono_ExcesoDevuelve400(t *testing.T) {
	h := nuevoServidor(t)

	rec := hacer(t, h, http.MethodPost, "/v1/clientes", map[string]any{"nombre": "Distribuidora Norte"})
	require.Equal(t, http.StatusCreated, rec.Code)
	cliente := decodificar[model.Cliente](t, rec)

	rec = hacer(t, h, http.MethodPost, "/v1/ventas", map[string]any{
		"fecha":      "2025-01-10",
		"cliente_id": cliente.ID,
		"precio":     3,
		"cantidad":   50,
		"unidad":     "unidades",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	venta := decodificar[model.Venta](t, rec)

	rec = hacer(t, h, http.MethodPost, "/v1/ventas/"+venta.ID+"/pagos", map[string]any{
		"monto": 151,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// El pago exacto sí entra.
	rec = hacer(t, h, http.MethodPost, "/v1/ventas/"+venta.ID+"/pagos", map[string]any{
		"monto": 150,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	pagada := decodificar[model.Venta](t, rec)
	require.Len(t, pagada.Pagos, 1)
}

func TestStockLeche_Endpoints(t *testing.T) {
	h := nuevoServidor(t)

	rec := hacer(t, h, http.MethodPost, "/v1/stock-leche/movimientos", map[string]any{
		"fecha":  "2025-01-10",
		"tipo":   "entrada",
		"litros": 60,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Una salida mayor al saldo se rechaza.
	rec = hacer(t, h, http.MethodPost, "/v1/stock-leche/movimientos", map[string]any{
		"fecha":  "2025-01-11",
		"tipo":   "salida",
		"litros": 61,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = hacer(t, h, http.MethodGet, "/v1/stock-leche/saldo", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	saldo := decodificar[dto.SaldoLecheResponse](t, rec)
	assert.True(t, saldo.Litros.Equal(decimal.NewFromInt(60)))
}

func TestRespaldo_ExportarRestaurar(t *testing.T) {
	h := nuevoServidor(t)

	rec := hacer(t, h, http.MethodPost, "/v1/clientes", map[string]any{"nombre": "Almacén El Sol"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = hacer(t, h, http.MethodGet, "/v1/respaldo", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "acopiapp_respaldo.json")
	respaldo := rec.Body.Bytes()

	// Restaurar sobre un servidor limpio y verificar que el cliente vuelve.
	limpio := nuevoServidor(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/respaldo", bytes.NewReader(respaldo))
	rec2 := httptest.NewRecorder()
	limpio.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusNoContent, rec2.Code, rec2.Body.String())

	rec2 = hacer(t, limpio, http.MethodGet, "/v1/clientes", nil)
	clientes := decodificar[[]model.Cliente](t, rec2)
	require.Len(t, clientes, 1)
	assert.Equal(t, "Almacén El Sol", clientes[0].Nombre)

	// Un documento sin todas las colecciones se rechaza sin tocar los datos.
	rec2 = hacer(t, limpio, http.MethodPost, "/v1/respaldo", map[string]any{
		"version": 1,
		"datos":   map[string]any{"clientes": []any{}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec2.Code)

	rec2 = hacer(t, limpio, http.MethodGet, "/v1/clientes", nil)
	require.Len(t, decodificar[[]model.Cliente](t, rec2), 1, "el respaldo inválido no borra nada")
}

func TestReportes_Semanal(t *testing.T) {
	h := nuevoServidor(t)

	rec := hacer(t, h, http.MethodPost, "/v1/proveedores", map[string]any{
		"nombre": "Tambo La Esperanza",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	proveedor := decodificar[model.Proveedor](t, rec)

	rec = hacer(t, h, http.MethodPost, "/v1/acopios", map[string]any{
		"fecha":        "2025-01-22",
		"proveedor_id": proveedor.ID,
		"litros":       200,
		"precio_litro": 1.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = hacer(t, h, http.MethodGet, fmt.Sprintf("/v1/reportes/semanal?fecha=%s", "2025-01-23"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rep := decodificar[dto.ReporteSemanal](t, rec)

	assert.Equal(t, "2025-01-20", rep.Desde.String())
	assert.True(t, rep.AcopioTotalLitros.Equal(decimal.NewFromInt(200)))
	require.Len(t, rep.AcopioPorProveedor, 1)
	assert.Equal(t, "Tambo La Esperanza", rep.AcopioPorProveedor[0].ProveedorNombre)
}
