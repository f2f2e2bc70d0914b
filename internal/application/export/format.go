// Package export arma las filas planas que se entregan a los formateadores CSV y PDF.
// No conoce el formato de salida: solo decide columnas, orden y presentación de valores.
package export

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// FormatCurrency pesos colombianos sin decimales: 2500000 → "$ 2.500.000".
func FormatCurrency(amount decimal.Decimal) string {
	return printer.Sprintf("$ %d", amount.Round(0).IntPart())
}

// FormatDate DD/MM/YYYY y, con withTime, HH:MM en hora local.
func FormatDate(t time.Time, withTime bool) string {
	if t.IsZero() {
		return ""
	}
	if withTime {
		return t.Local().Format("02/01/2006 15:04")
	}
	return t.Local().Format("02/01/2006")
}

// Filename nombre de archivo de descarga: base_DD-MM-YYYY.ext.
func Filename(base, ext string, now time.Time) string {
	return base + "_" + now.Local().Format("02-01-2006") + "." + ext
}
