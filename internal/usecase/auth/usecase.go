package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"sils-backend/internal/domain/uow"
	domain "sils-backend/internal/domain/user"
	"sils-backend/pkg/id"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Usecase struct {
	users  domain.Repository
	creds  domain.CredentialRepository
	uow    uow.UnitOfWork
	secret []byte
	ttl    time.Duration
}

func NewUsecase(users domain.Repository, creds domain.CredentialRepository, tx uow.UnitOfWork, secret string, ttl time.Duration) *Usecase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Usecase{users: users, creds: creds, uow: tx, secret: []byte(secret), ttl: ttl}
}

// Register creates the credential and the mirrored user row (role
// SIN_ASIGNAR until an admin assigns one) atomically.
func (u *Usecase) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usr := &domain.User{
		UserID: id.NewID32(),
		Email:  email,
		Role:   domain.RoleUnassigned,
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Users.Create(ctx, usr); err != nil {
			return err
		}
		return r.Credentials.Create(ctx, &domain.Credential{
			UserID:       usr.UserID,
			PasswordHash: string(hash),
		})
	})
	if err != nil {
		return nil, err
	}
	return usr, nil
}

// Login verifies the password and issues an HS256 bearer token with the user
// public id as subject.
func (u *Usecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	cred, err := u.creds.GetByUserID(ctx, usr.UserID)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   usr.UserID,
		"email": usr.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.ttl).Unix(),
	})
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, usr, nil
}
