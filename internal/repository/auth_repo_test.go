package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(db), mock
}

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("ops", "hash-value").
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := repo.Create("ops", "hash-value")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 3 {
		t.Fatalf("id = %d; want 3", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	dbErr := errors.New("UNIQUE constraint failed: users.username")
	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("ops", "hash-value").
		WillReturnError(dbErr)

	if _, err := repo.Create("ops", "hash-value"); !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
		AddRow(7, "ops", "$2a$10$hash")
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
		WithArgs("ops").
		WillReturnRows(rows)

	u, err := repo.GetByUsername("ops")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u == nil || u.ID != 7 || u.Username != "ops" || u.PasswordHash != "$2a$10$hash" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	u, err := repo.GetByUsername("ghost")
	if err != nil {
		t.Fatalf("not-found must not be an error, got %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
