package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, userID string) error
}

type CredentialRepository interface {
	Create(ctx context.Context, c *Credential) error
	GetByUserID(ctx context.Context, userID string) (*Credential, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
