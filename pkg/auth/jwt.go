package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Platform roles carried in token claims. MASTER is the platform
// operator; DIRECTOR is a club's own privileged role.
const (
	RoleMaster   string = "MASTER"
	RoleDirector string = "DIRECTOR"
	RoleMember   string = "MEMBER"
)

type JWTServiceInterface interface {
	GenerateJWT(userID, clubID int, role string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	UserID int    `json:"user_id"`
	ClubID int    `json:"club_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(userID, clubID int, role string, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		ClubID: clubID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "clubhub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != "clubhub" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
