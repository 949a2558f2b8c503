// Package identity fronts the external token-issuing identity provider.
// Tokens are verified locally against the shared signing secret; user lookup
// and verification links go through the user store.
package identity

import (
	"context"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/user"
)

// Identity is the verified subject extracted from a bearer token.
type Identity struct {
	SubjectID     common.UUID
	Email         string
	EmailVerified bool
	Role          user.Role
	InstitutionID common.UUID
}

type Verifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

type Claims struct {
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified"`
	Role          string `json:"role,omitempty"`
	InstitutionID string `json:"institution_id,omitempty"`
	jwt.RegisteredClaims
}

type Provider struct {
	secret  []byte
	issuer  string
	users   user.Repository
	baseURL string
}

func NewProvider(secret, issuer, verificationBaseURL string, users user.Repository) *Provider {
	return &Provider{secret: []byte(secret), issuer: issuer, users: users, baseURL: verificationBaseURL}
}

func (p *Provider) VerifyToken(ctx context.Context, tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	}, jwt.WithIssuer(p.issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, common.NewError(common.CodeUnauthorized, "invalid token", err)
	}
	subjectID, err := common.ParseUUID(claims.Subject)
	if err != nil {
		return nil, common.NewError(common.CodeUnauthorized, "invalid subject", err)
	}
	ident := &Identity{
		SubjectID:     subjectID,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Role:          user.Role(claims.Role),
	}
	if claims.InstitutionID != "" {
		if parsed, err := common.ParseUUID(claims.InstitutionID); err == nil {
			ident.InstitutionID = parsed
		}
	}
	return ident, nil
}

// GenerateToken mints a token in the provider's format. Used by seeds and
// tests; production tokens come from the external provider itself.
func (p *Provider) GenerateToken(u user.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Role:          string(u.Role),
		InstitutionID: u.InstitutionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *Provider) LookupUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return p.users.FindByEmail(ctx, email)
}

// GenerateVerificationLink builds the email-verification URL for a user.
// Delivery is out of scope; callers hand the link to the external mailer.
func (p *Provider) GenerateVerificationLink(ctx context.Context, email string) (string, error) {
	account, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	token, err := p.GenerateToken(*account, 24*time.Hour)
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to sign verification token", err)
	}
	return p.baseURL + "?token=" + url.QueryEscape(token), nil
}
