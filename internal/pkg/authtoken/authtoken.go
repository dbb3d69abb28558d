package authtoken

import (
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Subject roles minted by the identity provider.
const (
	RolePlayer = "player"
	RoleClub   = "club"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrInvalidRole  = errs.New("invalid role claim")
)

type Claims struct {
	SubjectID uuid.UUID
	Role      string
}

// Verifier validates bearer tokens issued by the external identity
// provider and extracts the opaque subject id the core trusts.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{
		secret: []byte(cfg.TokenSecret),
		issuer: cfg.Issuer,
	}
}

func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}
	subjectID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	role, _ := mapClaims["role"].(string)
	if role != RolePlayer && role != RoleClub {
		return nil, ErrInvalidRole
	}

	return &Claims{SubjectID: subjectID, Role: role}, nil
}
