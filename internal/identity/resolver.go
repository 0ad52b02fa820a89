// Package identity extracts the acting user's id from a user token.
//
// The token signature is NOT verified here. Trust in the token is established
// upstream (the gateway in front of this service, or the provisioning service
// that issued it); this package only reads the subject claim.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bff_create_account/internal/common"

	"github.com/golang-jwt/jwt/v5"
)

const resolveFailedMessage = "Erro ao buscar o ID de usuário a partir do Token de Usuário"

// ErrInvalidToken is the root cause when a token cannot be read or has no subject.
var ErrInvalidToken = errors.New("invalid token or missing sub claim")

// UserIDResolver is what the identity middleware depends on.
type UserIDResolver interface {
	ResolveUserID(token string) (string, error)
}

// Resolver decodes user tokens without signature verification.
type Resolver struct {
	parser *jwt.Parser
}

var _ UserIDResolver = (*Resolver)(nil)

// NewResolver creates a token resolver.
func NewResolver() *Resolver {
	return &Resolver{parser: jwt.NewParser()}
}

// ResolveUserID returns the subject claim of token as a string.
// Any failure is a 400 AppError wrapping the decode error.
func (r *Resolver) ResolveUserID(token string) (string, error) {
	claims, err := r.decodeClaims(token)
	if err != nil {
		return "", common.NewAppError(resolveFailedMessage, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidToken, err))
	}

	sub, ok := claims["sub"]
	if !ok || sub == nil {
		return "", common.NewAppError(resolveFailedMessage, http.StatusBadRequest, ErrInvalidToken)
	}

	userID := subjectString(sub)
	if userID == "" {
		return "", common.NewAppError(resolveFailedMessage, http.StatusBadRequest, ErrInvalidToken)
	}
	return userID, nil
}

// decodeClaims reads header and payload of a compact token. The alg header is
// never looked up, so tokens signed with algorithms unknown to jwt/v5 (or with
// none at all) still decode.
func (r *Resolver) decodeClaims(token string) (jwt.MapClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, jwt.ErrTokenMalformed
	}

	headerBytes, err := r.parser.DecodeSegment(parts[0])
	if err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	var header map[string]interface{}
	if err := json.Unmarshal(headerBytes, &header); err != nil || header == nil {
		return nil, fmt.Errorf("header is not a JSON object: %w", jwt.ErrTokenMalformed)
	}

	payload, err := r.parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	return claims, nil
}

// subjectString coerces a subject claim to a string. Numeric subjects decode as
// float64 and are rendered without an exponent or trailing zeros. Falsy
// subjects (0, false) count as missing.
func subjectString(sub interface{}) string {
	switch v := sub.(type) {
	case string:
		return v
	case float64:
		if v == 0 {
			return ""
		}
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case bool:
		if !v {
			return ""
		}
		return "true"
	default:
		return fmt.Sprintf("%v", v)
	}
}
