package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/techreview-api/internal/domain/compare"
)

// Escenario de referencia: un teléfono y una laptop con esquemas distintos
// deben producir una tabla unificada con marcador en el lado ausente.
func TestDiff_EscenarioReferencia(t *testing.T) {
	a := []compare.Pair{
		{Key: "RAM", Value: "8GB"},
		{Key: "Storage", Value: "128GB"},
	}
	b := []compare.Pair{
		{Key: "RAM", Value: "16GB"},
		{Key: "Camera", Value: "48MP"},
	}

	rows := compare.Diff(a, b)

	require.Len(t, rows, 3, "la unión de claves tiene exactamente 3 elementos")
	assert.Equal(t, compare.Row{Key: "RAM", Value1: "8GB", Value2: "16GB"}, rows[0])
	assert.Equal(t, compare.Row{Key: "Storage", Value1: "128GB", Value2: "-"}, rows[1])
	assert.Equal(t, compare.Row{Key: "Camera", Value1: "-", Value2: "48MP"}, rows[2])
}

// Propiedad: una fila por clave de la unión, ni más ni menos.
func TestDiff_UnionCompleta(t *testing.T) {
	a := []compare.Pair{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}, {Key: "C", Value: "3"}}
	b := []compare.Pair{{Key: "B", Value: "x"}, {Key: "D", Value: "y"}}

	rows := compare.Diff(a, b)

	keys := make(map[string]int)
	for _, r := range rows {
		keys[r.Key]++
	}
	assert.Len(t, keys, 4, "claves de la unión: A, B, C, D")
	for k, n := range keys {
		assert.Equal(t, 1, n, "la clave %s debe aparecer exactamente una vez", k)
	}
}

// Propiedad: clave presente solo en un lado -> marcador en el otro.
func TestDiff_MarcadorEnLadoAusente(t *testing.T) {
	rows := compare.Diff(
		[]compare.Pair{{Key: "SoloA", Value: "v"}},
		[]compare.Pair{{Key: "SoloB", Value: "w"}},
	)

	require.Len(t, rows, 2)
	assert.Equal(t, "-", rows[0].Value2)
	assert.Equal(t, "-", rows[1].Value1)
}

// Propiedad: simetría salvo intercambio de lados.
func TestDiff_SimetriaAlIntercambiar(t *testing.T) {
	a := []compare.Pair{{Key: "RAM", Value: "8GB"}, {Key: "Storage", Value: "128GB"}}
	b := []compare.Pair{{Key: "RAM", Value: "16GB"}, {Key: "Camera", Value: "48MP"}}

	ab := compare.Diff(a, b)
	ba := compare.Diff(b, a)

	require.Equal(t, len(ab), len(ba))

	byKey := func(rows []compare.Row) map[string]compare.Row {
		m := make(map[string]compare.Row, len(rows))
		for _, r := range rows {
			m[r.Key] = r
		}
		return m
	}
	mab, mba := byKey(ab), byKey(ba)
	for key, r := range mab {
		swapped, ok := mba[key]
		require.True(t, ok, "la clave %s debe existir en ambos sentidos", key)
		assert.Equal(t, r.Value1, swapped.Value2, "clave %s", key)
		assert.Equal(t, r.Value2, swapped.Value1, "clave %s", key)
	}
}

// Propiedad: mismo input -> mismo output, incluido el orden.
func TestDiff_Determinismo(t *testing.T) {
	a := []compare.Pair{{Key: "Z", Value: "1"}, {Key: "A", Value: "2"}, {Key: "M", Value: "3"}}
	b := []compare.Pair{{Key: "Q", Value: "4"}, {Key: "A", Value: "5"}}

	first := compare.Diff(a, b)
	second := compare.Diff(a, b)

	assert.Equal(t, first, second)
}

// El orden es primero-visto: claves de a en su orden, luego las nuevas de b.
func TestDiff_OrdenPrimeroVisto(t *testing.T) {
	a := []compare.Pair{{Key: "Z", Value: "1"}, {Key: "A", Value: "2"}}
	b := []compare.Pair{{Key: "Q", Value: "3"}, {Key: "Z", Value: "4"}}

	rows := compare.Diff(a, b)

	require.Len(t, rows, 3)
	assert.Equal(t, "Z", rows[0].Key)
	assert.Equal(t, "A", rows[1].Key)
	assert.Equal(t, "Q", rows[2].Key)
}

// Claves duplicadas dentro de un lado (datos legados): gana la primera, sin fallar.
func TestDiff_DuplicadosGanaPrimero(t *testing.T) {
	a := []compare.Pair{
		{Key: "RAM", Value: "8GB"},
		{Key: "RAM", Value: "32GB"},
	}
	b := []compare.Pair{{Key: "RAM", Value: "16GB"}}

	rows := compare.Diff(a, b)

	require.Len(t, rows, 1)
	assert.Equal(t, "8GB", rows[0].Value1)
	assert.Equal(t, "16GB", rows[0].Value2)
}

// Valor vacío se muestra como marcador, igual que una clave ausente.
func TestDiff_ValorVacioComoMarcador(t *testing.T) {
	rows := compare.Diff(
		[]compare.Pair{{Key: "Bateria", Value: ""}},
		[]compare.Pair{{Key: "Bateria", Value: "5000mAh"}},
	)

	require.Len(t, rows, 1)
	assert.Equal(t, "-", rows[0].Value1)
	assert.Equal(t, "5000mAh", rows[0].Value2)
}

// Ambos lados vacíos: diff vacío, no nil-panic.
func TestDiff_Vacios(t *testing.T) {
	rows := compare.Diff(nil, nil)
	assert.Empty(t, rows)
}
