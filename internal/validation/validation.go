// Package validation aplica las reglas de campos requeridos antes de
// cualquier escritura. Devuelve pares (campo JSON -> mensaje), que los
// handlers serializan en el header "errors" junto al body recibido.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los field paths del response usan los nombres JSON, no los de Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Check valida la entidad y devuelve el mapa de errores por campo.
// nil cuando la entidad es válida.
func Check(entity any) map[string]string {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError (nil, tipo no struct): lo tratamos
		// como entidad inválida completa.
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath recorta el nombre del struct raíz: "Owner.firstName" -> "firstName".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return "must have at least " + fe.Param() + " element(s)"
	case "max":
		return "must not exceed " + fe.Param() + " characters"
	case "numeric":
		return "must be a number"
	default:
		return "is invalid"
	}
}
