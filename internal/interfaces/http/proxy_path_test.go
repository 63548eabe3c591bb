package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseProxyPath tiene que aguantar las variantes que manda el frontend
// legado: rutas codificadas, query embebida y ambos órdenes de
// {companyId}/{resource}.
func TestParseProxyPath(t *testing.T) {
	const company = "58c872aa3ce7d5fc688b49bd"

	t.Run("data con query embebida", func(t *testing.T) {
		p, ok := parseProxyPath("data/" + company + "/catalog?offset=20&limit=100")
		require.True(t, ok)
		assert.Equal(t, "data", p.action)
		assert.Equal(t, company, p.company)
		assert.Equal(t, "catalog", p.resource)
		assert.Equal(t, 20, p.offset)
		assert.Equal(t, 100, p.limit)
	})

	t.Run("ruta codificada", func(t *testing.T) {
		p, ok := parseProxyPath("data%2F" + company + "%2Fclients%3Flimit%3D50")
		require.True(t, ok)
		assert.Equal(t, "clients", p.resource)
		assert.Equal(t, 50, p.limit)
	})

	t.Run("sub-recurso de catálogo", func(t *testing.T) {
		p, ok := parseProxyPath("data/" + company + "/catalog/categories")
		require.True(t, ok)
		assert.Equal(t, "catalog", p.resource)
		require.Len(t, p.rest, 1)
		assert.Equal(t, "categories", p.rest[0])
	})

	t.Run("search con paginación en la ruta", func(t *testing.T) {
		p, ok := parseProxyPath("search/" + company + "/docs/40/25")
		require.True(t, ok)
		assert.Equal(t, "search", p.action)
		assert.Equal(t, company, p.company)
		assert.Equal(t, "docs", p.resource)
		assert.Equal(t, 40, p.offset)
		assert.Equal(t, 25, p.limit)
	})

	t.Run("search con orden invertido", func(t *testing.T) {
		p, ok := parseProxyPath("search/docs/" + company + "/40/25")
		require.True(t, ok)
		assert.Equal(t, company, p.company)
		assert.Equal(t, "docs", p.resource)
		assert.Equal(t, 40, p.offset)
		assert.Equal(t, 25, p.limit)
	})

	t.Run("defaults sin query", func(t *testing.T) {
		p, ok := parseProxyPath("data/" + company + "/stores")
		require.True(t, ok)
		assert.Equal(t, 0, p.offset)
		assert.Equal(t, 1000, p.limit)
	})

	t.Run("ruta corta es inválida", func(t *testing.T) {
		_, ok := parseProxyPath("data")
		assert.False(t, ok)
	})

	t.Run("barras duplicadas se ignoran", func(t *testing.T) {
		p, ok := parseProxyPath("//data//" + company + "//catalog")
		require.True(t, ok)
		assert.Equal(t, "data", p.action)
		assert.Equal(t, "catalog", p.resource)
	})
}
