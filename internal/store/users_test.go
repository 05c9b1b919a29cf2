package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/mdan/duka-golang/internal/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func TestUserInsert(t *testing.T) {
	db, mock := newMockDB(t)
	users := &UserStore{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta(queryUserExists)).
		WithArgs("duka@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(queryInsertUser)).
		WithArgs("duka@example.com", nil, "hashed", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	user, err := users.Insert("duka@example.com", nil, "hashed")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("user ID = %d, want 7", user.ID)
	}
	if user.Email != "duka@example.com" {
		t.Errorf("user email = %q", user.Email)
	}
}

func TestUserInsertDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	users := &UserStore{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta(queryUserExists)).
		WithArgs("duka@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	if _, err := users.Insert("duka@example.com", nil, "hashed"); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Insert error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserInsertDuplicateEmailRace(t *testing.T) {
	// Two registrations race past the pre-check; the UNIQUE index wins
	// and the driver error maps to the same conflict.
	db, mock := newMockDB(t)
	users := &UserStore{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta(queryUserExists)).
		WithArgs("duka@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(queryInsertUser)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	if _, err := users.Insert("duka@example.com", nil, "hashed"); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Insert error = %v, want ErrDuplicateEmail", err)
	}
}

func TestGetByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	users := &UserStore{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta(queryUserByEmail)).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	if _, err := users.GetByEmail("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByEmail error = %v, want ErrUserNotFound", err)
	}
}

func mockTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestAuthenticate(t *testing.T) {
	db, mock := newMockDB(t)
	users := &UserStore{DB: db}

	var password models.Password
	if err := password.Set("open sesame 123"); err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	rows := sqlmock.NewRows([]string{"id", "email", "fullname", "password_hash", "created_at"}).
		AddRow(1, "duka@example.com", nil, password.Hash, mockTime())
	mock.ExpectQuery(regexp.QuoteMeta(queryUserByEmail)).
		WithArgs("duka@example.com").
		WillReturnRows(rows)

	user, err := users.Authenticate("duka@example.com", "open sesame 123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("user ID = %d, want 1", user.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	users := &UserStore{DB: db}

	var password models.Password
	if err := password.Set("open sesame 123"); err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	rows := sqlmock.NewRows([]string{"id", "email", "fullname", "password_hash", "created_at"}).
		AddRow(1, "duka@example.com", nil, password.Hash, mockTime())
	mock.ExpectQuery(regexp.QuoteMeta(queryUserByEmail)).
		WithArgs("duka@example.com").
		WillReturnRows(rows)

	if _, err := users.Authenticate("duka@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	users := &UserStore{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta(queryUserByEmail)).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	if _, err := users.Authenticate("nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate error = %v, want ErrInvalidCredentials", err)
	}
}
