package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

// tokens signs and verifies game tokens: HS256 JWTs binding a client to one game ID.
type tokens struct {
	secret []byte
	ttl    time.Duration
}

var errBadToken = errors.New("invalid token")

// sign creates a token for gameID expiring after the configured TTL.
func (t tokens) sign(gameID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// verify checks signature and expiry and returns the game ID claim.
func (t tokens) verify(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return "", errBadToken
	}
	gid, _ := claims["gid"].(string)
	if gid == "" {
		return "", errBadToken
	}
	return gid, nil
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ctxGameKey is the context key for the verified game ID.
type ctxGameKey struct{}

// gameIDFrom returns the game ID verified by requireGameToken.
func gameIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxGameKey{}).(string)
	return id
}

// requireGameToken enforces a valid token whose game ID matches the {id} route param.
func (s *Server) requireGameToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		gid, err := s.tokens.verify(tokenStr)
		if err != nil || gid != chi.URLParam(r, "id") {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxGameKey{}, gid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
