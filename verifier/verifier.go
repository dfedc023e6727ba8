// Package verifier wraps the external identity provider's token check. The
// rest of the service only ever sees the verified claim, never the raw token.
package verifier

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claim is the identity the external provider vouches for.
type Claim struct {
	Email string
	Name  string
}

var (
	ErrMalformed     = errors.New("malformed identity token")
	ErrInvalidIssuer = errors.New("invalid token issuer")
)

type Verifier interface {
	Verify(token string) (*Claim, error)
}

// JWTVerifier validates HS256 identity tokens signed with a shared secret.
// Issuer validation happens here, not in the session layer.
type JWTVerifier struct {
	secret []byte
	issuer string
}

func NewJWTVerifier(secret string, issuer string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer}
}

func (v *JWTVerifier) Verify(tokenString string) (*Claim, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformed
	}

	issuer, err := claims.GetIssuer()
	if err != nil || issuer != v.issuer {
		return nil, ErrInvalidIssuer
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if email == "" {
		return nil, ErrMalformed
	}
	return &Claim{Email: email, Name: name}, nil
}
