// Package csvexport serializa filas de exportación como CSV (RFC 4180, UTF-8).
package csvexport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/sistema-inventarios/internal/application/export"
)

// ContentType valor de Content-Type para las descargas.
const ContentType = "text/csv; charset=utf-8"

// ErrNoData no hay filas para exportar.
var ErrNoData = errors.New("no hay datos para exportar")

// Write escribe el encabezado tomado de la primera fila y luego una línea por fila.
// Las columnas de cada fila se alinean con el encabezado por nombre.
func Write(w io.Writer, rows []export.Row) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	headers := rows[0].Keys()
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("csv: encabezado: %w", err)
	}
	record := make([]string, len(headers))
	for _, r := range rows {
		for i, h := range headers {
			record[i] = safe(r.Get(h))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: fila: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// safe neutraliza valores que una hoja de cálculo interpretaría como fórmula.
func safe(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
