package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/event-ticket-booking/internal/model"
)

// UserRepo provides persistence for rows of the `user` table. The
// password column is stored exactly as handed over: hashing happens at
// the HTTP boundary and the store never interprets the credential.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database pool.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create validates and inserts a new user, returning the stored row
// with its generated id. All four fields are required.
func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	switch {
	case u.Name == "":
		return model.User{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case u.Rol == "":
		return model.User{}, fmt.Errorf("%w: rol is required", ErrInvalidInput)
	case u.Email == "":
		return model.User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	case u.Password == "":
		return model.User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO user (name, rol, email, password) VALUES (?,?,?,?)",
		u.Name, u.Rol, u.Email, u.Password)
	if err != nil {
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	u.ID = uint64(id)
	return u, nil
}

// GetByID fetches a single user or ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, rol, email, password FROM user WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Rol, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}
