// Package web concentra encode/decode JSON y el envelope de error que
// comparten todos los handlers. Antes cada módulo duplicaba su
// writeJSON; con siete entidades ya conviene el helper común.
package web

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
)

// ErrorInfo es el envelope de error del API:
// {"className": "...", "exMessage": "..."}.
// className es el nombre del tipo de error Go.
type ErrorInfo struct {
	ClassName string `json:"className"`
	ExMessage string `json:"exMessage"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError serializa el envelope genérico. 400 para errores causados
// por el cliente, 500 para fallas de storage/infra.
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, ErrorInfo{
		ClassName: fmt.Sprintf("%T", err),
		ExMessage: err.Error(),
	})
}

// WriteValidationErrors responde 400 con la entidad recibida como body
// y el mapa campo->mensaje en el header "errors" (contrato histórico).
func WriteValidationErrors(w http.ResponseWriter, entity any, errs map[string]string) {
	if b, err := json.Marshal(errs); err == nil {
		w.Header().Set("errors", string(b))
	}
	WriteJSON(w, http.StatusBadRequest, entity)
}

// Decode parsea el body JSON del request sobre v.
func Decode(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}
	return nil
}
