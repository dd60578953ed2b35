package readstore

import (
	"context"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/pkg/pgconv"
	"unistay/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserStore interface {
	FindCredentialsByEmail(ctx context.Context, email string) (*queries.UserCredentialsView, error)
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
}

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (r *UserReadStore) FindCredentialsByEmail(ctx context.Context, email string) (*queries.UserCredentialsView, error) {
	var v queries.UserCredentialsView
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active
		FROM users WHERE email = $1`,
		email,
	).Scan(&v.ID, &v.Email, &v.PasswordHash, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, email, role, is_active
		FROM users WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}
