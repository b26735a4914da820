package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	CreateUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) CreateUser(ctx context.Context, user User) error {
	query := `INSERT INTO users (id, username, display_name, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.DisplayName,
		user.PasswordHash,
		user.CreatedAt.UnixMilli(),
	)
	if err != nil {
		err := fmt.Errorf("could not store user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetUser(ctx context.Context, id string) (User, error) {
	query := `SELECT id, username, display_name, password_hash, created_at FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *RepoImpl) GetUserByUsername(ctx context.Context, username string) (User, error) {
	query := `SELECT id, username, display_name, password_hash, created_at FROM users WHERE username = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *RepoImpl) scanUser(row *sql.Row) (User, error) {
	var user User
	var createdAtMillis int64
	err := row.Scan(&user.ID, &user.Username, &user.DisplayName, &user.PasswordHash, &createdAtMillis)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		err := fmt.Errorf("could not scan user: %w", err)
		log.Error(err)
		return User{}, err
	}
	user.CreatedAt = time.UnixMilli(createdAtMillis)
	return user, nil
}
