package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"acopiapp/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(dia int) model.Fecha {
	return model.NuevaFecha(2025, time.January, dia)
}

func venta(id string, dia int, total int64) model.Venta {
	return model.Venta{
		ID:            id,
		Fecha:         fecha(dia),
		ClienteID:     "c1",
		ClienteNombre: "Almacén El Sol",
		Precio:        decimal.NewFromInt(total),
		Cantidad:      decimal.NewFromInt(1),
		Unidad:        model.UnidadUnidades,
		MontoTotal:    decimal.NewFromInt(total),
		Pagos:         []model.Pago{},
	}
}

// ── RegistrarPago ─────────────────────────────────────────────────────────────

func TestRegistrarPago_AplicaPago(t *testing.T) {
	v := venta("v1", 1, 100)

	err := RegistrarPago(&v, decimal.NewFromInt(40), fecha(3))
	require.NoError(t, err)

	assert.Len(t, v.Pagos, 1)
	assert.True(t, Saldo(&v).Equal(decimal.NewFromInt(60)))
}

func TestRegistrarPago_RechazaExcesoSinMutar(t *testing.T) {
	v := venta("v1", 1, 100)
	require.NoError(t, RegistrarPago(&v, decimal.NewFromInt(80), fecha(2)))

	err := RegistrarPago(&v, decimal.NewFromInt(21), fecha(3))
	assert.ErrorIs(t, err, ErrPagoExcedeSaldo)
	assert.Len(t, v.Pagos, 1, "un pago rechazado no debe dejar efecto parcial")
	assert.True(t, Saldo(&v).Equal(decimal.NewFromInt(20)))
}

func TestRegistrarPago_RechazaMontoNoPositivo(t *testing.T) {
	v := venta("v1", 1, 100)

	assert.ErrorIs(t, RegistrarPago(&v, decimal.Zero, fecha(2)), ErrMontoInvalido)
	assert.ErrorIs(t, RegistrarPago(&v, decimal.NewFromInt(-5), fecha(2)), ErrMontoInvalido)
	assert.Empty(t, v.Pagos)
}

func TestRegistrarPago_PermitePagoExacto(t *testing.T) {
	v := venta("v1", 1, 100)

	require.NoError(t, RegistrarPago(&v, decimal.NewFromInt(100), fecha(2)))
	assert.True(t, Saldada(&v))
	assert.True(t, Saldo(&v).IsZero())
}

// ── DeudaCliente ──────────────────────────────────────────────────────────────

func TestDeudaCliente_SumaSoloSaldosPositivos(t *testing.T) {
	v1 := venta("v1", 1, 100)
	v2 := venta("v2", 2, 50)
	require.NoError(t, RegistrarPago(&v2, decimal.NewFromInt(50), fecha(2)))
	// Sobrepago manual (estado que el motor nunca genera, pero debe tolerar)
	v3 := venta("v3", 3, 30)
	v3.Pagos = append(v3.Pagos, model.Pago{Fecha: fecha(3), Monto: decimal.NewFromInt(45)})

	deuda := DeudaCliente([]model.Venta{v1, v2, v3})
	assert.True(t, deuda.Equal(decimal.NewFromInt(100)), "saldadas y sobrepagadas aportan cero, nunca negativo")
}

// ── AplicarAbonoGlobal ────────────────────────────────────────────────────────

func TestAplicarAbonoGlobal_MasAntiguaPrimero(t *testing.T) {
	ventas := []model.Venta{
		venta("v1", 1, 50),
		venta("v2", 5, 30),
		venta("v3", 10, 20),
	}

	err := AplicarAbonoGlobal(ventas, decimal.NewFromInt(60), fecha(15))
	require.NoError(t, err)

	assert.True(t, Saldo(&ventas[0]).IsZero(), "la venta del 1 de enero queda saldada")
	assert.True(t, Saldo(&ventas[1]).Equal(decimal.NewFromInt(20)), "la del 5 de enero recibe 10")
	assert.True(t, Saldo(&ventas[2]).Equal(decimal.NewFromInt(20)), "la del 10 de enero queda intacta")
	assert.Empty(t, ventas[2].Pagos)
}

func TestAplicarAbonoGlobal_Conservacion(t *testing.T) {
	ventas := []model.Venta{
		venta("v1", 3, 120),
		venta("v2", 1, 80),
		venta("v3", 7, 45),
	}
	antes := DeudaCliente(ventas)
	monto := decimal.NewFromFloat(133.25)

	require.NoError(t, AplicarAbonoGlobal(ventas, monto, fecha(9)))

	despues := DeudaCliente(ventas)
	assert.True(t, antes.Sub(despues).Equal(monto), "la deuda baja exactamente en el monto abonado")
	for i := range ventas {
		assert.False(t, Saldo(&ventas[i]).IsNegative(), "ningún saldo queda negativo")
	}
}

func TestAplicarAbonoGlobal_RechazaExcesoSinMutar(t *testing.T) {
	ventas := []model.Venta{venta("v1", 1, 50), venta("v2", 2, 30)}

	err := AplicarAbonoGlobal(ventas, decimal.NewFromInt(81), fecha(5))
	assert.ErrorIs(t, err, ErrPagoExcedeSaldo)
	assert.Empty(t, ventas[0].Pagos)
	assert.Empty(t, ventas[1].Pagos)
}

func TestAplicarAbonoGlobal_RechazaSinDeuda(t *testing.T) {
	v := venta("v1", 1, 50)
	require.NoError(t, RegistrarPago(&v, decimal.NewFromInt(50), fecha(2)))

	err := AplicarAbonoGlobal([]model.Venta{v}, decimal.NewFromInt(10), fecha(5))
	assert.ErrorIs(t, err, ErrSinDeuda)
}

func TestAplicarAbonoGlobal_EmpateMismaFechaOrdenDeLista(t *testing.T) {
	ventas := []model.Venta{
		venta("primera", 4, 40),
		venta("segunda", 4, 40),
	}

	require.NoError(t, AplicarAbonoGlobal(ventas, decimal.NewFromInt(50), fecha(6)))

	assert.True(t, Saldo(&ventas[0]).IsZero(), "con fechas iguales gana el orden de inserción")
	assert.True(t, Saldo(&ventas[1]).Equal(decimal.NewFromInt(30)))
}

func TestAplicarAbonoGlobal_SaltaVentasSaldadas(t *testing.T) {
	v1 := venta("v1", 1, 50)
	require.NoError(t, RegistrarPago(&v1, decimal.NewFromInt(50), fecha(1)))
	ventas := []model.Venta{v1, venta("v2", 5, 30)}

	require.NoError(t, AplicarAbonoGlobal(ventas, decimal.NewFromInt(30), fecha(8)))

	assert.Len(t, ventas[0].Pagos, 1, "una venta saldada no recibe pagos nuevos")
	assert.True(t, Saldo(&ventas[1]).IsZero())
}

// ── CancelarCuenta ────────────────────────────────────────────────────────────

func TestCancelarCuenta_RespetaCorte(t *testing.T) {
	ventas := []model.Venta{
		venta("v1", 2, 100),
		venta("v2", 10, 60),
		venta("v3", 20, 40),
	}
	require.NoError(t, RegistrarPago(&ventas[0], decimal.NewFromInt(30), fecha(5)))

	saldadas := CancelarCuenta(ventas, fecha(10))

	assert.Equal(t, 2, saldadas)
	assert.True(t, Saldo(&ventas[0]).IsZero(), "venta anterior al corte queda en cero exacto")
	assert.True(t, Saldo(&ventas[1]).IsZero(), "venta en la fecha de corte incluida")
	assert.True(t, Saldo(&ventas[2]).Equal(decimal.NewFromInt(40)), "venta posterior al corte intacta")
	assert.Empty(t, ventas[2].Pagos)
}

func TestCancelarCuenta_IgnoraSaldadas(t *testing.T) {
	v := venta("v1", 2, 100)
	require.NoError(t, RegistrarPago(&v, decimal.NewFromInt(100), fecha(3)))
	ventas := []model.Venta{v}

	saldadas := CancelarCuenta(ventas, fecha(10))

	assert.Equal(t, 0, saldadas)
	assert.Len(t, ventas[0].Pagos, 1)
}

func TestCancelarCuenta_PagoLlevaFechaDeCorte(t *testing.T) {
	ventas := []model.Venta{venta("v1", 2, 100)}

	CancelarCuenta(ventas, fecha(10))

	require.Len(t, ventas[0].Pagos, 1)
	assert.True(t, ventas[0].Pagos[0].Fecha.Igual(fecha(10)))
}

// ── Secuencias mixtas ─────────────────────────────────────────────────────────

func TestSecuenciaDeOperaciones_NuncaSaldoNegativo(t *testing.T) {
	ventas := []model.Venta{
		venta("v1", 1, 75),
		venta("v2", 3, 125),
		venta("v3", 8, 40),
	}

	require.NoError(t, RegistrarPago(&ventas[0], decimal.NewFromInt(25), fecha(2)))
	require.NoError(t, AplicarAbonoGlobal(ventas, decimal.NewFromInt(90), fecha(9)))
	CancelarCuenta(ventas, fecha(5))
	require.NoError(t, AplicarAbonoGlobal(ventas, DeudaCliente(ventas), fecha(12)))

	for i := range ventas {
		assert.False(t, Saldo(&ventas[i]).IsNegative())
	}
	assert.True(t, DeudaCliente(ventas).IsZero())
}

// ── EstadoDeCuenta ────────────────────────────────────────────────────────────

func TestEstadoDeCuenta_ReconciliaConDeuda(t *testing.T) {
	ventas := []model.Venta{
		venta("v1", 1, 300),
		venta("v2", 10, 200),
	}
	require.NoError(t, RegistrarPago(&ventas[0], decimal.NewFromInt(120), fecha(5)))

	filas := EstadoDeCuenta(ventas, nil)

	require.NotEmpty(t, filas)
	final := filas[len(filas)-1].Saldo
	assert.True(t, final.Equal(decimal.NewFromInt(380)))
	assert.True(t, final.Equal(DeudaCliente(ventas)), "el saldo final reconcilia con la deuda agregada")
}

func TestEstadoDeCuenta_EntregaInicialEnLaFilaDeVenta(t *testing.T) {
	v := venta("v1", 4, 250)
	v.Pagos = append(v.Pagos, model.Pago{Fecha: fecha(4), Monto: decimal.NewFromInt(50)})

	filas := EstadoDeCuenta([]model.Venta{v}, nil)

	require.Len(t, filas, 1, "el pago del mismo día viaja en la fila de la venta")
	assert.Equal(t, "Venta", filas[0].Descripcion)
	assert.True(t, filas[0].Debe.Equal(decimal.NewFromInt(250)))
	assert.True(t, filas[0].Haber.Equal(decimal.NewFromInt(50)))
	assert.True(t, filas[0].Saldo.Equal(decimal.NewFromInt(200)))
}

func TestEstadoDeCuenta_AbonoPosteriorEnFilaPropia(t *testing.T) {
	v := venta("v1", 4, 250)
	require.NoError(t, RegistrarPago(&v, decimal.NewFromInt(100), fecha(9)))

	filas := EstadoDeCuenta([]model.Venta{v}, nil)

	require.Len(t, filas, 2)
	assert.Equal(t, "Venta", filas[0].Descripcion)
	assert.Equal(t, "Abono", filas[1].Descripcion)
	assert.True(t, filas[1].Haber.Equal(decimal.NewFromInt(100)))
	assert.True(t, filas[1].Saldo.Equal(decimal.NewFromInt(150)))
}

func TestEstadoDeCuenta_MismoDiaVentaAntesQueAbono(t *testing.T) {
	v1 := venta("v1", 2, 100)
	v2 := venta("v2", 6, 80)
	// Abono a v1 el mismo día en que se registra v2
	require.NoError(t, RegistrarPago(&v1, decimal.NewFromInt(40), fecha(6)))

	filas := EstadoDeCuenta([]model.Venta{v1, v2}, nil)

	require.Len(t, filas, 3)
	assert.Equal(t, "Venta", filas[1].Descripcion, "en el mismo día la venta (mayor débito) va primero")
	assert.Equal(t, "Abono", filas[2].Descripcion)
}

func TestEstadoDeCuenta_SaldoAnterior(t *testing.T) {
	ventas := []model.Venta{
		venta("v1", 1, 300),
		venta("v2", 10, 200),
	}
	require.NoError(t, RegistrarPago(&ventas[0], decimal.NewFromInt(120), fecha(5)))

	desde := fecha(8)
	filas := EstadoDeCuenta(ventas, &desde)

	require.Len(t, filas, 2)
	assert.Equal(t, "Saldo anterior", filas[0].Descripcion)
	assert.True(t, filas[0].Saldo.Equal(decimal.NewFromInt(180)), "300 - 120 previos al rango")
	assert.True(t, filas[1].Saldo.Equal(decimal.NewFromInt(380)), "el saldo final no cambia por el plegado")
}

func TestEstadoDeCuenta_SinMovimientosPreviosNoAgregaFila(t *testing.T) {
	ventas := []model.Venta{venta("v1", 10, 200)}

	desde := fecha(2)
	filas := EstadoDeCuenta(ventas, &desde)

	require.Len(t, filas, 1)
	assert.Equal(t, "Venta", filas[0].Descripcion)
}

// ── Round-trip ────────────────────────────────────────────────────────────────

func TestVentas_RoundTripJSON(t *testing.T) {
	ventas := []model.Venta{venta("v1", 1, 300), venta("v2", 10, 200)}
	require.NoError(t, RegistrarPago(&ventas[0], decimal.NewFromInt(120), fecha(5)))

	data, err := json.Marshal(ventas)
	require.NoError(t, err)

	var recargadas []model.Venta
	require.NoError(t, json.Unmarshal(data, &recargadas))

	require.Len(t, recargadas, 2)
	assert.Equal(t, ventas[0].ID, recargadas[0].ID)
	assert.True(t, recargadas[0].Fecha.Igual(ventas[0].Fecha))
	assert.True(t, DeudaCliente(recargadas).Equal(DeudaCliente(ventas)))
	require.Len(t, recargadas[0].Pagos, 1)
	assert.True(t, recargadas[0].Pagos[0].Monto.Equal(decimal.NewFromInt(120)))
}
