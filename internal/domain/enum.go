package domain

// Enum es una enumeración cerrada de valores string (estados, prioridades, roles).
// Es el único punto donde se valida pertenencia; cada entidad declara la suya.
type Enum[T ~string] struct {
	field   string
	values  []T
	aliases map[string]T
}

// NewEnum construye la enumeración para el campo indicado.
func NewEnum[T ~string](field string, values ...T) *Enum[T] {
	return &Enum[T]{field: field, values: values, aliases: map[string]T{}}
}

// WithAlias registra un sinónimo aceptado que se normaliza al valor canónico.
func (e *Enum[T]) WithAlias(alias string, canonical T) *Enum[T] {
	e.aliases[alias] = canonical
	return e
}

// Parse valida s contra la enumeración. Un valor fuera del conjunto devuelve *ValidationError
// con la lista de valores permitidos.
func (e *Enum[T]) Parse(s string) (T, error) {
	for _, v := range e.values {
		if string(v) == s {
			return v, nil
		}
	}
	if v, ok := e.aliases[s]; ok {
		return v, nil
	}
	var zero T
	msg := "valor inválido"
	if s == "" {
		msg = "es requerido"
	}
	return zero, &ValidationError{Field: e.field, Message: msg, Allowed: e.Strings()}
}

// Contains indica si v es miembro canónico de la enumeración.
func (e *Enum[T]) Contains(v T) bool {
	for _, x := range e.values {
		if x == v {
			return true
		}
	}
	return false
}

// Values devuelve una copia de los valores canónicos.
func (e *Enum[T]) Values() []T {
	out := make([]T, len(e.values))
	copy(out, e.values)
	return out
}

// Strings devuelve los valores canónicos como []string.
func (e *Enum[T]) Strings() []string {
	out := make([]string, len(e.values))
	for i, v := range e.values {
		out[i] = string(v)
	}
	return out
}

// Field devuelve el nombre del campo validado.
func (e *Enum[T]) Field() string { return e.field }
