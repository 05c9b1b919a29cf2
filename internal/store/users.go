package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/mdan/duka-golang/internal/models"
)

// UserStore is the identity store: it owns the 'users' table.
type UserStore struct {
	DB *sql.DB
}

const (
	queryUserExists = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	queryInsertUser = `
		INSERT INTO users (email, fullname, password_hash, created_at)
		VALUES (?, ?, ?, ?)`

	queryUserByEmail = `
		SELECT id, email, fullname, password_hash, created_at
		FROM users
		WHERE email = ?`
)

// mysqlDuplicateEntry is the server error code for a UNIQUE violation.
const mysqlDuplicateEntry = 1062

// Insert registers a new user. The email is pre-checked for a friendly
// conflict error; the UNIQUE index stays the source of truth if two
// registrations race, so a 1062 from the driver maps to the same error.
func (s *UserStore) Insert(email string, fullname *string, passwordHash string) (*models.User, error) {
	var exists bool
	if err := s.DB.QueryRow(queryUserExists, email).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	user := &models.User{
		Email:        email,
		FullName:     fullname,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	result, err := s.DB.Exec(queryInsertUser, user.Email, user.FullName, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	user.ID = id

	return user, nil
}

// GetByEmail looks a user up by their unique email.
func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.QueryRow(queryUserByEmail, email).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies an email/password pair against the stored hash.
// Unknown email and wrong password both come back as
// ErrInvalidCredentials so the two cases are indistinguishable to a
// caller probing for accounts.
func (s *UserStore) Authenticate(email, plaintextPassword string) (*models.User, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(plaintextPassword)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
