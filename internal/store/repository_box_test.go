package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
)

func newTestBoxRepo(t *testing.T) (*boxRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &boxRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestBoxRepository_PutAndGet(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO boxes").
		WithArgs("session", "token", []byte("abc")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Put(context.Background(), "session", "token", []byte("abc")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectQuery("SELECT value").
		WithArgs("session", "token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("abc")))

	value, err := repo.Get(context.Background(), "session", "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(value) != "abc" {
		t.Errorf("expected value abc, got %s", value)
	}
}

func TestBoxRepository_Get_KeyNotFound(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs("session", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "session", "missing")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestBoxRepository_Keys(t *testing.T) {
	repo, mock, db := newTestBoxRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT key").
		WithArgs("session").
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("token").AddRow("refresh"))

	keys, err := repo.Keys(context.Background(), "session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "token" || keys[1] != "refresh" {
		t.Errorf("unexpected keys: %v", keys)
	}
}
