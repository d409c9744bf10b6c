package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "go-rms/internal/auth/errors"
	"go-rms/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 12 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

type service struct {
	employees employee.Repository
}

func NewService(employees employee.Repository) Service {
	return &service{employees: employees}
}

// Login authenticates an active employee by number and PIN and issues a
// short-lived HS256 token carrying the employee id and role.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	row, err := s.employees.FindByNumber(ctx, req.EmployeeNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(row.PinHash), []byte(req.Pin)) != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  row.ID.String(),
		"role": row.Role,
		"name": row.FullName(),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccessToken: signed,
		ExpiresIn:   int64(tokenTTL.Seconds()),
		EmployeeID:  row.ID.String(),
		FullName:    row.FullName(),
		Role:        row.Role,
	}, nil
}
