package auth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/udistrital/unidoc_api/pkg/errx"
	"github.com/udistrital/unidoc_api/pkg/kernel"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeTokenInvalid    = ErrRegistry.Register("TOKEN_INVALID", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid or expired token")
	CodeTokenMissing    = ErrRegistry.Register("TOKEN_MISSING", errx.TypeAuthorization, http.StatusUnauthorized, "Missing authorization header")
	CodeForbidden       = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
	CodeInvalidRol      = ErrRegistry.Register("INVALID_ROL", errx.TypeAuthorization, http.StatusUnauthorized, "Unknown portal role")
	CodeTokenGeneration = ErrRegistry.Register("TOKEN_GENERATION", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
)

func ErrTokenInvalid() *errx.Error { return ErrRegistry.New(CodeTokenInvalid) }
func ErrTokenMissing() *errx.Error { return ErrRegistry.New(CodeTokenMissing) }
func ErrForbidden() *errx.Error    { return ErrRegistry.New(CodeForbidden) }
func ErrInvalidRol() *errx.Error   { return ErrRegistry.New(CodeInvalidRol) }

// TokenClaims are the portal claims decoded from a validated token
type TokenClaims struct {
	UserID    kernel.UserID
	Email     kernel.Email
	Rol       kernel.Rol
	ExpiresAt time.Time
}

// TokenService issues and validates portal access tokens
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, email kernel.Email, rol kernel.Rol) (string, error)
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
}

// JWTService implements TokenService with HMAC-signed JWTs
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
}

// NewJWTService creates a JWT token service
func NewJWTService(secretKey string, ttl time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		issuer:    issuer,
	}
}

type portalClaims struct {
	Email string `json:"email"`
	Rol   string `json:"rol"`
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a signed token carrying the user's rol claim
func (s *JWTService) GenerateAccessToken(userID kernel.UserID, email kernel.Email, rol kernel.Rol) (string, error) {
	now := time.Now()

	claims := portalClaims{
		Email: string(email),
		Rol:   string(rol),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", ErrRegistry.New(CodeTokenGeneration).WithCause(err)
	}

	return signed, nil
}

// ValidateAccessToken parses and verifies a token, returning its claims
func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	var claims portalClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid()
	}

	rol := kernel.Rol(claims.Rol)
	if !rol.IsValid() {
		return nil, ErrInvalidRol().WithDetail("rol", claims.Rol)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &TokenClaims{
		UserID:    kernel.UserID(claims.Subject),
		Email:     kernel.Email(claims.Email),
		Rol:       rol,
		ExpiresAt: expiresAt,
	}, nil
}
