package auth

import (
	"errors"
	"fmt"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "cortex-backend"

// Claims are the JWT claims of an org session
type Claims struct {
	Org   string   `json:"org"`
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Principal converts the claims into the caller identity
func (c *Claims) Principal() (acl.Principal, error) {
	orgID, err := uuid.Parse(c.Org)
	if err != nil {
		return acl.Principal{}, fmt.Errorf("invalid org claim: %w", err)
	}
	accountID, err := uuid.Parse(c.Subject)
	if err != nil {
		return acl.Principal{}, fmt.Errorf("invalid subject claim: %w", err)
	}
	return acl.Principal{
		OrgID:     orgID,
		AccountID: accountID,
		Email:     c.Email,
		Roles:     c.Roles,
	}, nil
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresIn   int64     `json:"expiresIn"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// TokenService issues and validates HS256 session tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token TTL must be positive")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for account in org
func (s *TokenService) Issue(org *models.Org, account *models.Account) (*TokenResponse, error) {
	roles, err := account.RoleNames()
	if err != nil {
		return nil, fmt.Errorf("failed to read account roles: %w", err)
	}
	if roles == nil {
		roles = []string{}
	}

	now := s.now()
	expires := now.Add(s.ttl)
	claims := &Claims{
		Org:   org.ID.String(),
		Email: account.Email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   account.ID.String(),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.ttl.Seconds()),
		ExpiresAt:   expires.UTC(),
	}, nil
}

// Validate parses and verifies a token. Every failure is cortex.unauthorized.invalidToken.
func (s *TokenService) Validate(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrInvalidToken.WithReason("token has expired").Wrap(err)
		}
		return nil, apperrors.ErrInvalidToken.Wrap(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
