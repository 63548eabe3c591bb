package objectid_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/pkg/objectid"
)

var hex24 = regexp.MustCompile(`^[0-9a-f]{24}$`)

func TestNew_FormatoHex24(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := objectid.New()
		require.Len(t, id, 24)
		assert.Regexp(t, hex24, id, "el id debe ser hex en minúsculas")
	}
}

func TestNewAt_PrefijoEsTimestamp(t *testing.T) {
	now := time.Unix(1488810666, 0) // 2017-03-06, época de los ids legados
	id := objectid.NewAt(now)

	assert.Equal(t, fmt.Sprintf("%08x", now.Unix()), id[:8],
		"los 8 primeros hex deben ser el Unix time en segundos")
}

func TestNew_SinColisionesEnLote(t *testing.T) {
	// La unicidad es probabilística; un lote pequeño dentro del mismo
	// segundo no debería colisionar (18 bytes de azar por id).
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := objectid.New()
		_, dup := seen[id]
		require.False(t, dup, "id duplicado en el lote: %s", id)
		seen[id] = struct{}{}
	}
}
