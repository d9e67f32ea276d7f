package infra

// pdf.go — Client statement (estado de cuenta) generation using go-pdf/fpdf.
// A4 portrait with:
//   - Business name header
//   - Client name and emission date
//   - Movement table (date, description, debit, credit, running balance)
//   - Bold closing balance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"acopiapp/internal/ledger"

	"github.com/go-pdf/fpdf"
)

// GenerarEstadoCuentaPDF writes the statement to
// storagePath/estado_cuenta_{cliente}.pdf and returns the file path.
func GenerarEstadoCuentaPDF(nombreNegocio, clienteNombre string, filas []ledger.MovimientoCuenta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	slug := strings.ToLower(strings.ReplaceAll(clienteNombre, " ", "_"))
	if slug == "" {
		slug = "cliente"
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("estado_cuenta_%s.pdf", slug))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, nombreNegocio, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Estado de Cuenta", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 6, "Cliente: "+clienteNombre, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2, 6, "Emitido: "+time.Now().Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Table header ─────────────────────────────────────────────────────────
	colFecha := contentW * 0.14
	colDesc := contentW * 0.32
	colDebe := contentW * 0.18
	colHaber := contentW * 0.18
	colSaldo := contentW * 0.18

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colFecha, 6, "Fecha", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colDesc, 6, "Concepto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colDebe, 6, "Debe", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colHaber, 6, "Haber", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colSaldo, 6, "Saldo", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, fila := range filas {
		debe, haber := "", ""
		if fila.Debe.IsPositive() {
			debe = "$" + fila.Debe.StringFixed(2)
		}
		if fila.Haber.IsPositive() {
			haber = "$" + fila.Haber.StringFixed(2)
		}
		pdf.CellFormat(colFecha, 6, fila.Fecha.Time().Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(colDesc, 6, fila.Descripcion, "", 0, "L", false, 0, "")
		pdf.CellFormat(colDebe, 6, debe, "", 0, "R", false, 0, "")
		pdf.CellFormat(colHaber, 6, haber, "", 0, "R", false, 0, "")
		pdf.CellFormat(colSaldo, 6, "$"+fila.Saldo.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Closing balance ──────────────────────────────────────────────────────
	saldoFinal := "$0.00"
	if len(filas) > 0 {
		saldoFinal = "$" + filas[len(filas)-1].Saldo.StringFixed(2)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colFecha+colDesc+colDebe+colHaber, 7, "SALDO PENDIENTE:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colSaldo, 7, saldoFinal, "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
