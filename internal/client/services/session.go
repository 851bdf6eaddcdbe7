// Package services contains application services for the storefront client:
// session lifecycle, catalog access, and order placement.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shopeasy/storefront/internal/client/api"
	"github.com/shopeasy/storefront/internal/client/models"
	"github.com/shopeasy/storefront/internal/client/repositories/localdata"
	"github.com/shopeasy/storefront/internal/dbx"
)

// Keys under which the session is persisted across restarts.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// SessionService owns the authenticated session: it authenticates against
// the gateway and persists the token and user profile locally so the
// session survives restarts.
//
// Contract:
//   - Restore: load the persisted session; valid only if both keys are
//     present and the user value parses. Storage failures are not
//     distinguished from absence.
//   - Login: authenticate and persist both values.
//   - Register: create an account; the caller must log in separately.
//   - Logout: delete both persisted values.
//
// All methods honor context cancellation.
type SessionService interface {
	Restore(ctx context.Context) (models.User, string, bool)
	Login(ctx context.Context, email string, password string) (models.User, string, error)
	Register(ctx context.Context, name string, email string, password string) error
	Logout(ctx context.Context) error
}

type sessionService struct {
	client api.Client
	db     *sql.DB
}

// NewSessionService constructs a SessionService bound to the given API
// client and local database.
func NewSessionService(client api.Client, db *sql.DB) SessionService {
	return &sessionService{client: client, db: db}
}

func (s *sessionService) repo() localdata.Repository {
	return localdata.NewSQLiteRepository(s.db)
}

// Restore reads the persisted token and user. It reports authenticated only
// when both values are present and the user deserializes; any read failure
// means anonymous.
func (s *sessionService) Restore(ctx context.Context) (models.User, string, bool) {
	repo := s.repo()

	token, err := repo.Get(ctx, KeyToken)
	if err != nil || len(token) == 0 {
		return models.User{}, "", false
	}

	raw, err := repo.Get(ctx, KeyUser)
	if err != nil || len(raw) == 0 {
		return models.User{}, "", false
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.User{}, "", false
	}

	return user, string(token), true
}

// Login authenticates against the gateway and persists token and user in a
// single transaction.
func (s *sessionService) Login(ctx context.Context, email string, password string) (models.User, string, error) {
	user, token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return models.User{}, "", err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localdata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, raw)
	})
	if err != nil {
		return models.User{}, "", fmt.Errorf("session saving error: %w", err)
	}

	return user, token, nil
}

// Register creates the account on the gateway. It deliberately does not log
// the user in.
func (s *sessionService) Register(ctx context.Context, name string, email string, password string) error {
	return s.client.Register(ctx, name, email, password)
}

// Logout removes both persisted session values.
func (s *sessionService) Logout(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localdata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyUser)
	})
}
