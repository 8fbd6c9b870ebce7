package cart

import "fmt"

// ValidationError bloque la soumission d'une commande (champ de contact vide, panier vide).
// L'erreur est récupérable : le panier reste intact.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation %s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
