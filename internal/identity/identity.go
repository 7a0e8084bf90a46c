package identity

import (
	"fmt"
	"time"

	"auctionhouse/internal/auctionerrors"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is a resolved user identity. The zero value means "not authenticated":
// core operations receive it explicitly and never reach back into the transport
// layer for credentials.
type Identity struct {
	UserID      string
	DisplayName string
}

// Resolved reports whether the identity belongs to an authenticated user.
func (id Identity) Resolved() bool {
	return id.UserID != ""
}

// Provider resolves a raw request credential to an identity.
type Provider interface {
	Resolve(credential string) (Identity, error)
}

// Claims is the JWT payload carried by access tokens.
type Claims struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

// JWTProvider resolves HS256-signed bearer tokens.
type JWTProvider struct {
	secret []byte
}

// NewJWTProvider creates a provider validating tokens against secret.
func NewJWTProvider(secret string) (*JWTProvider, error) {
	if secret == "" {
		return nil, fmt.Errorf("identity: JWT secret must not be empty")
	}
	return &JWTProvider{secret: []byte(secret)}, nil
}

// Resolve validates the token and returns the identity it carries.
func (p *JWTProvider) Resolve(credential string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return Identity{}, fmt.Errorf("identity: %w", auctionerrors.ErrUnauthenticated)
	}

	return Identity{UserID: claims.UserID, DisplayName: claims.DisplayName}, nil
}

// Sign issues a token for the given identity, expiring after ttl.
func (p *JWTProvider) Sign(id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      id.UserID,
		DisplayName: id.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}
