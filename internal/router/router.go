package router

import (
	"time"

	"acopiapp/internal/config"
	"acopiapp/internal/handler"
	"acopiapp/internal/middleware"
	"acopiapp/internal/service"
	"acopiapp/internal/store"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store
func New(cfg *config.Config, st *store.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Services ─────────────────────────────────────────────────────────────
	clienteSvc := service.NewClienteService(st)
	proveedorSvc := service.NewProveedorService(st)
	ventaSvc := service.NewVentaService(st)
	acopioSvc := service.NewAcopioService(st)
	produccionSvc := service.NewProduccionService(st)
	stockSvc := service.NewStockLecheService(st)
	reporteSvc := service.NewReporteService(st)
	respaldoSvc := service.NewRespaldoService(st)

	// ── Handlers ─────────────────────────────────────────────────────────────
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	deudasH := handler.NewDeudasHandler(ventaSvc, cfg.NombreNegocio, cfg.PDFStoragePath)
	acopiosH := handler.NewAcopiosHandler(acopioSvc)
	produccionH := handler.NewProduccionHandler(produccionSvc)
	stockH := handler.NewStockLecheHandler(stockSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	respaldoH := handler.NewRespaldoHandler(respaldoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(cfg.DataPath))

	v1 := r.Group("/v1")
	{
		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)

			// Debt ledger, scoped per client
			clientes.GET("/:id/deuda", deudasH.Deuda)
			clientes.POST("/:id/abonos", deudasH.AbonoGlobal)
			clientes.POST("/:id/cancelar-cuenta", deudasH.CancelarCuenta)
			clientes.GET("/:id/estado-cuenta", deudasH.EstadoCuenta)
			clientes.GET("/:id/estado-cuenta/pdf", deudasH.EstadoCuentaPDF)
		}

		proveedores := v1.Group("/proveedores")
		{
			proveedores.POST("", proveedoresH.Crear)
			proveedores.GET("", proveedoresH.Listar)
			proveedores.GET("/:id", proveedoresH.Obtener)
			proveedores.PUT("/:id", proveedoresH.Actualizar)
			proveedores.DELETE("/:id", proveedoresH.Eliminar)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", ventasH.Registrar)
			ventas.GET("", ventasH.Listar)
			ventas.DELETE("/:id", ventasH.Eliminar)
			ventas.POST("/:id/pagos", ventasH.RegistrarAbono)
		}

		v1.GET("/deudas", deudasH.ResumenDeudas)

		acopios := v1.Group("/acopios")
		{
			acopios.POST("", acopiosH.Registrar)
			acopios.GET("", acopiosH.Listar)
			acopios.DELETE("/:id", acopiosH.Eliminar)
		}

		producciones := v1.Group("/producciones")
		{
			producciones.POST("", produccionH.Registrar)
			producciones.GET("", produccionH.Listar)
			producciones.DELETE("/:id", produccionH.Eliminar)
		}

		stock := v1.Group("/stock-leche")
		{
			stock.POST("/movimientos", stockH.RegistrarMovimiento)
			stock.GET("/movimientos", stockH.Listar)
			stock.GET("/saldo", stockH.Saldo)
		}

		reportes := v1.Group("/reportes")
		{
			reportes.GET("/semanal", reportesH.Semanal)
			reportes.GET("/estadisticas", reportesH.Estadisticas)
		}

		v1.GET("/respaldo", respaldoH.Exportar)
		v1.POST("/respaldo", respaldoH.Restaurar)
	}

	return r
}
