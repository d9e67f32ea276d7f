// Package ledger implements the client debt ledger: per-sale balances,
// aggregate client debt, oldest-first lump-payment allocation, account
// write-off up to a cutoff date, and the consolidated statement with running
// balance. Every function is pure arithmetic over the Venta list held by the
// store; validation happens before any mutation, so a failed operation leaves
// the list untouched.
package ledger

import (
	"errors"
	"sort"

	"acopiapp/internal/model"

	"github.com/shopspring/decimal"
)

var (
	ErrMontoInvalido   = errors.New("el monto debe ser mayor a cero")
	ErrPagoExcedeSaldo = errors.New("el pago excede el saldo pendiente")
	ErrSinDeuda        = errors.New("el cliente no tiene deuda pendiente")
)

// MontoPagado is the sum of all payments applied to a sale.
func MontoPagado(v *model.Venta) decimal.Decimal {
	total := decimal.Zero
	for _, p := range v.Pagos {
		total = total.Add(p.Monto)
	}
	return total
}

// Saldo is the remaining unpaid amount of a sale. Can go below zero only if
// the persisted data was tampered with; the engine itself never produces a
// negative saldo.
func Saldo(v *model.Venta) decimal.Decimal {
	return v.MontoTotal.Sub(MontoPagado(v))
}

// Saldada reports whether a sale is fully paid.
func Saldada(v *model.Venta) bool {
	return !Saldo(v).IsPositive()
}

// RegistrarPago appends a payment dated fecha to the sale.
// Precondition: 0 < monto <= Saldo(v). On violation nothing is mutated.
func RegistrarPago(v *model.Venta, monto decimal.Decimal, fecha model.Fecha) error {
	if !monto.IsPositive() {
		return ErrMontoInvalido
	}
	if monto.GreaterThan(Saldo(v)) {
		return ErrPagoExcedeSaldo
	}
	v.Pagos = append(v.Pagos, model.Pago{Fecha: fecha, Monto: monto})
	return nil
}

// DeudaCliente sums the positive balances of the given sales. Settled or
// overpaid sales contribute zero, never a negative.
func DeudaCliente(ventas []model.Venta) decimal.Decimal {
	deuda := decimal.Zero
	for i := range ventas {
		if s := Saldo(&ventas[i]); s.IsPositive() {
			deuda = deuda.Add(s)
		}
	}
	return deuda
}

// AplicarAbonoGlobal distributes one lump payment across a client's
// outstanding sales, oldest first, mutating ventas in place. Sales sharing a
// date keep their insertion order (stable sort, date-only key). The
// allocation is greedy and not reversible.
// Precondition: 0 < monto <= DeudaCliente(ventas); on violation nothing is
// mutated. On success the amounts applied sum exactly to monto and no sale's
// saldo goes negative.
func AplicarAbonoGlobal(ventas []model.Venta, monto decimal.Decimal, fecha model.Fecha) error {
	if !monto.IsPositive() {
		return ErrMontoInvalido
	}
	deuda := DeudaCliente(ventas)
	if !deuda.IsPositive() {
		return ErrSinDeuda
	}
	if monto.GreaterThan(deuda) {
		return ErrPagoExcedeSaldo
	}

	pendientes := make([]int, 0, len(ventas))
	for i := range ventas {
		if Saldo(&ventas[i]).IsPositive() {
			pendientes = append(pendientes, i)
		}
	}
	sort.SliceStable(pendientes, func(a, b int) bool {
		return ventas[pendientes[a]].Fecha.Antes(ventas[pendientes[b]].Fecha)
	})

	restante := monto
	for _, idx := range pendientes {
		if !restante.IsPositive() {
			break
		}
		v := &ventas[idx]
		aplicado := decimal.Min(restante, Saldo(v))
		v.Pagos = append(v.Pagos, model.Pago{Fecha: fecha, Monto: aplicado})
		restante = restante.Sub(aplicado)
	}
	return nil
}

// CancelarCuenta writes off every outstanding sale dated on or before
// fechaCorte by appending a payment of exactly its saldo, dated fechaCorte.
// Sales after the cutoff, or already settled, are untouched. Returns how
// many sales were settled.
//
// The write-off is stored as a plain Pago, indistinguishable from cash
// received; reports cannot tell them apart.
func CancelarCuenta(ventas []model.Venta, fechaCorte model.Fecha) int {
	saldadas := 0
	for i := range ventas {
		v := &ventas[i]
		if v.Fecha.Despues(fechaCorte) {
			continue
		}
		s := Saldo(v)
		if !s.IsPositive() {
			continue
		}
		v.Pagos = append(v.Pagos, model.Pago{Fecha: fechaCorte, Monto: s})
		saldadas++
	}
	return saldadas
}

// MovimientoCuenta is one row of the consolidated statement.
type MovimientoCuenta struct {
	Fecha       model.Fecha     `json:"fecha"`
	Descripcion string          `json:"descripcion"`
	Debe        decimal.Decimal `json:"debe"`
	Haber       decimal.Decimal `json:"haber"`
	Saldo       decimal.Decimal `json:"saldo"`
}

// EstadoDeCuenta builds the chronological statement for one client's sales:
// a debit row per sale (carrying same-day payments as its credit, the
// "entrega inicial") and a credit row per remaining payment. Rows are sorted
// by date; same-day ties put larger debits first so a sale renders before
// its partial payment. When desde is non-nil, everything strictly before it
// collapses into a single "Saldo anterior" row and the running balance
// continues from there. The closing balance equals DeudaCliente over the
// same sales.
func EstadoDeCuenta(ventas []model.Venta, desde *model.Fecha) []MovimientoCuenta {
	filas := make([]MovimientoCuenta, 0, len(ventas)*2)
	for i := range ventas {
		v := &ventas[i]
		entrega := decimal.Zero
		for _, p := range v.Pagos {
			if p.Fecha.Igual(v.Fecha) {
				entrega = entrega.Add(p.Monto)
			} else {
				filas = append(filas, MovimientoCuenta{
					Fecha:       p.Fecha,
					Descripcion: "Abono",
					Debe:        decimal.Zero,
					Haber:       p.Monto,
				})
			}
		}
		filas = append(filas, MovimientoCuenta{
			Fecha:       v.Fecha,
			Descripcion: "Venta",
			Debe:        v.MontoTotal,
			Haber:       entrega,
		})
	}

	sort.SliceStable(filas, func(a, b int) bool {
		if !filas[a].Fecha.Igual(filas[b].Fecha) {
			return filas[a].Fecha.Antes(filas[b].Fecha)
		}
		return filas[a].Debe.GreaterThan(filas[b].Debe)
	})

	resultado := make([]MovimientoCuenta, 0, len(filas)+1)
	saldo := decimal.Zero

	inicio := 0
	if desde != nil {
		anterior := decimal.Zero
		for inicio < len(filas) && filas[inicio].Fecha.Antes(*desde) {
			anterior = anterior.Add(filas[inicio].Debe).Sub(filas[inicio].Haber)
			inicio++
		}
		if inicio > 0 {
			saldo = anterior
			fila := MovimientoCuenta{
				Fecha:       *desde,
				Descripcion: "Saldo anterior",
				Saldo:       saldo,
			}
			if anterior.IsNegative() {
				fila.Haber = anterior.Neg()
			} else {
				fila.Debe = anterior
			}
			resultado = append(resultado, fila)
		}
	}

	for _, fila := range filas[inicio:] {
		saldo = saldo.Add(fila.Debe).Sub(fila.Haber)
		fila.Saldo = saldo
		resultado = append(resultado, fila)
	}
	return resultado
}
