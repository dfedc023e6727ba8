package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"gin-catalog/apperrors"
	"gin-catalog/dto"
	"gin-catalog/models"
	"gin-catalog/repositories"
	"gin-catalog/verifier"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionLifetime = 24 * time.Hour

type IAuthService interface {
	Login(ctx context.Context, externalToken string) (*dto.LoginResponse, error)
	Logout(tokenString string) error
	GetOwnerFromToken(ctx context.Context, tokenString string) (*models.Owner, string, error)
}

type AuthService struct {
	verifier          verifier.Verifier
	ownerRepository   repositories.IOwnerRepository
	sessionRepository repositories.ISessionRepository
}

func NewAuthService(v verifier.Verifier, ownerRepository repositories.IOwnerRepository, sessionRepository repositories.ISessionRepository) IAuthService {
	return &AuthService{
		verifier:          v,
		ownerRepository:   ownerRepository,
		sessionRepository: sessionRepository,
	}
}

// Login exchanges an externally verified identity token for a session. The
// owner record is created exactly once on first sight of the email; re-auth
// just re-resolves it. The response carries the anti-forgery state token that
// mutating requests must echo back.
func (s *AuthService) Login(ctx context.Context, externalToken string) (*dto.LoginResponse, error) {
	claim, err := s.verifier.Verify(externalToken)
	if err != nil {
		return nil, apperrors.New(apperrors.Unauthenticated, "identity verification failed")
	}

	owner, err := s.ownerRepository.FindOrCreateByEmail(ctx, claim.Email, claim.Name)
	if err != nil {
		return nil, err
	}

	state := uuid.NewString()
	sessionToken, err := createSessionToken(owner.ID, owner.Email, state)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		SessionToken: *sessionToken,
		StateToken:   state,
	}, nil
}

func createSessionToken(ownerID uint, email string, state string) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   ownerID,
		"email": email,
		"state": state,
		"exp":   time.Now().Add(sessionLifetime).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

// GetOwnerFromToken resolves the session's owner and anti-forgery state token.
func (s *AuthService) GetOwnerFromToken(ctx context.Context, tokenString string) (*models.Owner, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil || !token.Valid {
		return nil, "", apperrors.New(apperrors.Unauthenticated, "invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", apperrors.New(apperrors.Unauthenticated, "invalid session token")
	}
	if exp, ok := claims["exp"].(float64); !ok || float64(time.Now().Unix()) > exp {
		return nil, "", apperrors.New(apperrors.Unauthenticated, "session expired")
	}

	revoked, err := s.sessionRepository.IsSessionRevoked(tokenString)
	if err != nil {
		return nil, "", err
	}
	if revoked {
		return nil, "", apperrors.New(apperrors.Unauthenticated, "session revoked")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, "", apperrors.New(apperrors.Unauthenticated, "invalid session token")
	}
	state, _ := claims["state"].(string)

	owner, err := s.ownerRepository.FindByID(ctx, uint(sub))
	if err != nil {
		return nil, "", apperrors.New(apperrors.Unauthenticated, "unknown session owner")
	}
	return owner, state, nil
}

// Logout revokes a session until its own expiry would have reclaimed it.
func (s *AuthService) Logout(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil || !token.Valid {
		return apperrors.New(apperrors.Unauthenticated, "invalid session token")
	}

	expiresAt := time.Now().Add(sessionLifetime).Unix()
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = int64(exp)
		}
	}

	return s.sessionRepository.RevokeSession(tokenString, expiresAt)
}
