package storage

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresStore_LoadMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(db)

	mock.ExpectQuery("SELECT record_value FROM records").
		WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"record_value"}))

	if _, err := store.Load("orders"); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_LoadAndSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(db)

	rows := sqlmock.NewRows([]string{"record_value"}).AddRow(`[{"id":"a"}]`)
	mock.ExpectQuery("SELECT record_value FROM records").
		WithArgs("wishlist").
		WillReturnRows(rows)

	data, err := store.Load("wishlist")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(data) != `[{"id":"a"}]` {
		t.Fatalf("unexpected record value %q", string(data))
	}

	mock.ExpectExec("INSERT INTO records").
		WithArgs("wishlist", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Save("wishlist", []byte(`[]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_SaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(db)

	mock.ExpectExec("INSERT INTO records").
		WithArgs("orders", `[]`).
		WillReturnError(errors.New("connection reset"))

	if err := store.Save("orders", []byte(`[]`)); err == nil {
		t.Fatalf("expected save error, got nil")
	}
}
