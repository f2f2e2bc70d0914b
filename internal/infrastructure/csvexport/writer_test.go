package csvexport_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventarios/internal/application/export"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/csvexport"
)

func TestWrite(t *testing.T) {
	rows := []export.Row{
		{{Key: "Código", Value: "PROD-001"}, {Key: "Nombre", Value: `Laptop HP 15"`}, {Key: "Notas", Value: "uno, dos"}},
		{{Key: "Código", Value: "PROD-002"}, {Key: "Nombre", Value: "Mouse"}, {Key: "Notas", Value: "=SUMA(A1)"}},
	}
	var buf bytes.Buffer
	require.NoError(t, csvexport.Write(&buf, rows))

	assert.Equal(t,
		"Código,Nombre,Notas\n"+
			"PROD-001,\"Laptop HP 15\"\"\",\"uno, dos\"\n"+
			"PROD-002,Mouse,'=SUMA(A1)\n",
		buf.String())
}

func TestWrite_SinFilas(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, csvexport.Write(&buf, nil), csvexport.ErrNoData)
	assert.Zero(t, buf.Len())
}
