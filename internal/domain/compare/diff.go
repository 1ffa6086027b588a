// Package compare implementa el diff clave-por-clave de dos colecciones de
// atributos (lógica pura, sin dependencias de infraestructura).
//
// El resultado cubre la unión de claves de ambos lados: las dos tecnologías
// pueden tener esquemas heterogéneos (un teléfono vs. una laptop) y aun así
// se produce una tabla unificada, con un marcador en el lado que no tiene la
// clave. Los valores son strings opacos; no hay comparación numérica ni de
// unidades.
package compare

// Placeholder es el valor emitido cuando un lado no tiene la clave o la
// tiene con valor vacío: el frontend trata ambos casos igual.
const Placeholder = "-"

// Pair es un atributo de un lado: clave y valor.
type Pair struct {
	Key   string
	Value string
}

// Row es una fila del resultado: una clave y el valor de cada lado.
type Row struct {
	Key    string
	Value1 string
	Value2 string
}

// Diff calcula la unión de claves de a y b y emite exactamente una Row por
// clave. El orden es determinista: primero las claves de a en su orden de
// llegada, después las claves de b que no aparecieron en a, también en orden
// de llegada. Si una clave se repite dentro de un mismo lado (datos legados),
// gana la primera aparición.
func Diff(a, b []Pair) []Row {
	valuesA, orderA := index(a)
	valuesB, orderB := index(b)

	rows := make([]Row, 0, len(orderA)+len(orderB))
	for _, key := range orderA {
		rows = append(rows, Row{
			Key:    key,
			Value1: orValue(valuesA[key]),
			Value2: lookup(valuesB, key),
		})
	}
	for _, key := range orderB {
		if _, seen := valuesA[key]; seen {
			continue
		}
		rows = append(rows, Row{
			Key:    key,
			Value1: Placeholder,
			Value2: orValue(valuesB[key]),
		})
	}
	return rows
}

// index construye el mapa clave->valor y el orden de primera aparición.
func index(pairs []Pair) (map[string]string, []string) {
	values := make(map[string]string, len(pairs))
	order := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if _, dup := values[p.Key]; dup {
			continue // primera aparición gana
		}
		values[p.Key] = p.Value
		order = append(order, p.Key)
	}
	return values, order
}

func lookup(values map[string]string, key string) string {
	v, ok := values[key]
	if !ok {
		return Placeholder
	}
	return orValue(v)
}

func orValue(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}
