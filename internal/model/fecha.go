package model

import (
	"fmt"
	"time"
)

// FormatoFecha is the wire and storage format for all dates (day precision).
const FormatoFecha = "2006-01-02"

// Fecha is a civil date: day precision, no time zone semantics beyond the
// local day. All comparisons in the ledger and reports happen at day level,
// so the underlying instant is always midnight UTC.
type Fecha struct {
	t time.Time
}

func NuevaFecha(anio int, mes time.Month, dia int) Fecha {
	return Fecha{t: time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)}
}

// HoyFecha returns the current local day as a Fecha.
func HoyFecha() Fecha {
	now := time.Now()
	return NuevaFecha(now.Year(), now.Month(), now.Day())
}

// ParseFecha parses a YYYY-MM-DD string.
func ParseFecha(s string) (Fecha, error) {
	t, err := time.Parse(FormatoFecha, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return NuevaFecha(t.Year(), t.Month(), t.Day()), nil
}

func (f Fecha) String() string { return f.t.Format(FormatoFecha) }

func (f Fecha) Time() time.Time { return f.t }

func (f Fecha) EsCero() bool { return f.t.IsZero() }

func (f Fecha) Antes(o Fecha) bool { return f.t.Before(o.t) }

func (f Fecha) Despues(o Fecha) bool { return f.t.After(o.t) }

func (f Fecha) Igual(o Fecha) bool { return f.t.Equal(o.t) }

// AntesOIgual reports f <= o.
func (f Fecha) AntesOIgual(o Fecha) bool { return !f.t.After(o.t) }

// SumarDias returns the date n days later (negative n goes back).
func (f Fecha) SumarDias(n int) Fecha {
	t := f.t.AddDate(0, 0, n)
	return NuevaFecha(t.Year(), t.Month(), t.Day())
}

// InicioSemana returns the Monday of the week containing f.
func (f Fecha) InicioSemana() Fecha {
	wd := int(f.t.Weekday())
	if wd == 0 { // Sunday
		wd = 7
	}
	return f.SumarDias(-(wd - 1))
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("fecha inválida %s", s)
	}
	parsed, err := ParseFecha(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
