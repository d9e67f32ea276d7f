// cmd/seeddata/main.go — Carga un juego de datos de demostración en el
// almacén JSON. Uso: go run cmd/seeddata/main.go [data_path]
package main

import (
	"log"
	"os"
	"time"

	"acopiapp/internal/model"
	"acopiapp/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func main() {
	dataPath := "./data"
	if len(os.Args) > 1 {
		dataPath = os.Args[1]
	}

	st, err := store.Abrir(dataPath)
	if err != nil {
		log.Fatalf("abrir almacén: %v", err)
	}

	hoy := model.HoyFecha()

	proveedores := []model.Proveedor{
		{ID: uuid.NewString(), Nombre: "Tambo La Esperanza", Telefono: "555-0101", Tambo: "La Esperanza"},
		{ID: uuid.NewString(), Nombre: "Tambo Don Raúl", Telefono: "555-0102", Tambo: "Don Raúl"},
	}
	clientes := []model.Cliente{
		{ID: uuid.NewString(), Nombre: "Almacén El Sol", Direccion: "Av. Principal 120", Telefono: "555-0201"},
		{ID: uuid.NewString(), Nombre: "Distribuidora Norte", Direccion: "Ruta 9 km 14", Telefono: "555-0202"},
	}

	acopios := []model.Acopio{}
	for dia := 6; dia >= 0; dia-- {
		fecha := hoy.SumarDias(-dia)
		for i, p := range proveedores {
			litros := decimal.NewFromInt(int64(180 + 20*i))
			precio := decimal.NewFromFloat(1.45)
			acopios = append(acopios, model.Acopio{
				ID:              uuid.NewString(),
				Fecha:           fecha,
				ProveedorID:     p.ID,
				ProveedorNombre: p.Nombre,
				Litros:          litros,
				PrecioLitro:     precio,
				Total:           litros.Mul(precio),
			})
		}
	}

	precioBalde := decimal.NewFromFloat(2.50)
	ventas := []model.Venta{
		{
			ID:            uuid.NewString(),
			Fecha:         hoy.SumarDias(-5),
			ClienteID:     clientes[0].ID,
			ClienteNombre: clientes[0].Nombre,
			Precio:        precioBalde,
			Cantidad:      decimal.NewFromInt(2),
			Unidad:        model.UnidadBaldes,
			MontoTotal:    precioBalde.Mul(decimal.NewFromInt(2)).Mul(decimal.NewFromInt(model.UnidadesPorBalde)),
			Pagos: []model.Pago{
				{Fecha: hoy.SumarDias(-5), Monto: decimal.NewFromInt(200)},
			},
		},
		{
			ID:            uuid.NewString(),
			Fecha:         hoy.SumarDias(-2),
			ClienteID:     clientes[1].ID,
			ClienteNombre: clientes[1].Nombre,
			Precio:        decimal.NewFromFloat(3.10),
			Cantidad:      decimal.NewFromInt(150),
			Unidad:        model.UnidadUnidades,
			MontoTotal:    decimal.NewFromFloat(3.10).Mul(decimal.NewFromInt(150)),
			Pagos:         []model.Pago{},
		},
	}

	producciones := []model.Produccion{
		{ID: uuid.NewString(), Fecha: hoy.SumarDias(-4), LitrosUsados: decimal.NewFromInt(320), KilosProducidos: decimal.NewFromInt(41)},
		{ID: uuid.NewString(), Fecha: hoy.SumarDias(-1), LitrosUsados: decimal.NewFromInt(290), KilosProducidos: decimal.NewFromInt(38)},
	}

	movimientos := []model.MovimientoLeche{
		{ID: uuid.NewString(), Fecha: hoy.SumarDias(-3), Tipo: model.MovimientoEntrada, Litros: decimal.NewFromInt(60), Detalle: "Reserva leche entera"},
		{ID: uuid.NewString(), Fecha: hoy.SumarDias(-1), Tipo: model.MovimientoSalida, Litros: decimal.NewFromInt(25), Detalle: "Venta mostrador"},
	}

	pasos := []struct {
		nombre string
		fn     func() error
	}{
		{"proveedores", func() error { return st.ReplaceProveedores(proveedores) }},
		{"clientes", func() error { return st.ReplaceClientes(clientes) }},
		{"acopios", func() error { return st.ReplaceAcopios(acopios) }},
		{"ventas", func() error { return st.ReplaceVentas(ventas) }},
		{"producciones", func() error { return st.ReplaceProducciones(producciones) }},
		{"movimientos", func() error { return st.ReplaceMovimientosLeche(movimientos) }},
	}
	for _, paso := range pasos {
		if err := paso.fn(); err != nil {
			log.Fatalf("sembrar %s: %v", paso.nombre, err)
		}
	}

	log.Printf("datos de demostración escritos en %s (%s)", dataPath, time.Now().Format(time.RFC3339))
}
