package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RemoteError couvre les réponses non-2xx et les pannes réseau vers le backend.
// StatusCode vaut 0 quand la requête n'a pas abouti.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// IsTransport indique une panne réseau (pas de réponse du backend)
func (e *RemoteError) IsTransport() bool { return e.StatusCode == 0 }

// MessageOr renvoie le message du serveur, ou fallback s'il n'y en a pas
func (e *RemoteError) MessageOr(fallback string) string {
	if e.StatusCode == 0 || e.Message == "" {
		return fallback
	}
	return e.Message
}

// IsUnauthorized indique que le backend a refusé le token
func IsUnauthorized(err error) bool {
	var rerr *RemoteError
	return errors.As(err, &rerr) && rerr.StatusCode == http.StatusUnauthorized
}
