package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	// Secret is the HMAC-SHA256 symmetric key (issuer mode).
	Secret string

	// PublicKeyPEM is a PEM-encoded RSA public key. When set, the service runs
	// in validation-only mode and accepts RS256 tokens minted by the platform
	// identity service.
	PublicKeyPEM string

	Issuer     string
	Expiration time.Duration
}

// JWTService validates bearer tokens for the simulator API and can mint
// HMAC tokens for development and testing.
type JWTService struct {
	config    jwtParsedConfig
	rawConfig JWTConfig
}

type jwtParsedConfig struct {
	secret    []byte
	publicKey interface{}
	useRSA    bool
}

// NewJWTService creates a new JWTService with the given configuration.
// Exactly one of PublicKeyPEM (validation-only RS256) or Secret (HS256)
// must be provided.
func NewJWTService(cfg JWTConfig) (*JWTService, error) {
	svc := &JWTService{rawConfig: cfg}

	switch {
	case cfg.PublicKeyPEM != "":
		pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		svc.config = jwtParsedConfig{publicKey: pubKey, useRSA: true}

	case cfg.Secret != "":
		svc.config = jwtParsedConfig{secret: []byte(cfg.Secret)}

	default:
		return nil, fmt.Errorf("jwt configuration requires PublicKeyPEM or Secret")
	}

	return svc, nil
}

// GenerateToken creates a new HS256 token for the given user. It returns an
// error in validation-only mode.
func (s *JWTService) GenerateToken(userID uuid.UUID, roles []string) (string, error) {
	if s.config.useRSA {
		return "", fmt.Errorf("cannot generate token: validation-only mode (no secret configured)")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.rawConfig.Issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.rawConfig.Expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		UserID: userID,
		Roles:  roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.config.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT token string.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if s.config.useRSA {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v (expected RS256)", token.Header["alg"])
			}
			return s.config.publicKey, nil
		}
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v (expected HS256)", token.Header["alg"])
		}
		return s.config.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if s.rawConfig.Issuer != "" && claims.Issuer != s.rawConfig.Issuer {
		return nil, fmt.Errorf("invalid issuer: got %q, want %q", claims.Issuer, s.rawConfig.Issuer)
	}

	return claims, nil
}

// LoadKeyFromFile reads a PEM-encoded key from a file path.
func LoadKeyFromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %q: %w", path, err)
	}
	return data, nil
}
