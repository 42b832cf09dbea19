package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates provider-issued bearer tokens. When a JWKS URL is
// configured, signatures are checked against the provider's published
// keys (refreshed in the background); otherwise the provider's shared
// HS256 secret is used.
type Verifier struct {
	jwks   *keyfunc.JWKS
	secret []byte
}

func NewVerifier(ctx context.Context, jwksURL, secret string) (*Verifier, error) {
	v := &Verifier{secret: []byte(secret)}

	if jwksURL != "" {
		jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
			Ctx:               ctx,
			RefreshUnknownKID: true,
		})
		if err != nil {
			return nil, fmt.Errorf("fetch JWKS: %w", err)
		}
		v.jwks = jwks
	} else if secret == "" {
		return nil, errors.New("verifier needs a JWKS URL or a shared secret")
	}

	return v, nil
}

// Verify checks the token signature and expiry and returns the provider
// subject (the external user id).
func (v *Verifier) Verify(tokenString string) (string, error) {
	var keyFn jwt.Keyfunc
	if v.jwks != nil {
		keyFn = v.jwks.Keyfunc
	} else {
		keyFn = func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return v.secret, nil
		}
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyFn)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("token not valid")
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// Close stops the background JWKS refresh, if any.
func (v *Verifier) Close() {
	if v.jwks != nil {
		v.jwks.EndBackground()
	}
}
