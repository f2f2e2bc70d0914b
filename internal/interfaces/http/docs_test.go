package http_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventarios/docs"
)

// swaggerPath convierte "/api/products/:id" en "/api/products/{id}".
func swaggerPath(p string) string {
	p = strings.TrimRight(p, "/")
	segs := strings.Split(p, "/")
	for i, s := range segs {
		if strings.HasPrefix(s, ":") {
			segs[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segs, "/")
}

func TestDocs_TodasLasRutasDocumentadas(t *testing.T) {
	var spec struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &spec))

	app := newAPI(t)
	seen := 0
	for _, r := range app.GetRoutes(true) {
		if !strings.HasPrefix(r.Path, "/api/") {
			continue
		}
		switch r.Method {
		case "GET", "POST", "PUT", "DELETE":
		default:
			continue
		}
		seen++
		ops, ok := spec.Paths[swaggerPath(r.Path)]
		if !assert.Truef(t, ok, "ruta sin documentar: %s %s", r.Method, r.Path) {
			continue
		}
		_, ok = ops[strings.ToLower(r.Method)]
		assert.Truef(t, ok, "método sin documentar: %s %s", r.Method, r.Path)
	}
	assert.Greater(t, seen, 30)
}

func TestDocs_Info(t *testing.T) {
	assert.Equal(t, "Sistema de Inventarios API", docs.SwaggerInfo.Title)
	assert.Equal(t, "/", docs.SwaggerInfo.BasePath)
	assert.Contains(t, docs.SwaggerInfo.ReadDoc(), `"Bearer"`)
}
