package readstore

import (
	"context"

	"eventure/internal/domain/user"
	"eventure/internal/infra"
	"eventure/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	view := &queries.AuthorizedUserView{}
	var passwordHash string
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, is_active, password_hash
		 FROM users WHERE email = $1`, email.Value()).
		Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, passwordHash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view := &queries.AuthorizedUserView{}
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, is_active FROM users WHERE id = $1`, id).
		Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}
