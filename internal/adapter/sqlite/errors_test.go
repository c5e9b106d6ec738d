package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite/testhelper"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := sqlite.MapError(nil, "contact", "x"); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	got := sqlite.MapError(fmt.Errorf("scan row: %w", sql.ErrNoRows), "contact", id.String())

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := fmt.Sprintf("contact %s: not found", id); got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_ContextPassThrough(t *testing.T) {
	t.Parallel()

	for _, cause := range []error{context.Canceled, context.DeadlineExceeded} {
		got := sqlite.MapError(cause, "contact", "x")
		if !errors.Is(got, cause) {
			t.Errorf("MapError(%v) lost the context error: %v", cause, got)
		}
		if errors.Is(got, domain.ErrStorage) {
			t.Errorf("MapError(%v) must not be a storage error", cause)
		}
	}
}

func TestMapError_UnknownBecomesStorageError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk I/O error")
	got := sqlite.MapError(cause, "job_application", "abc")

	var se *domain.StorageError
	if !errors.As(got, &se) {
		t.Fatalf("MapError(unknown) = %T, want *domain.StorageError", got)
	}
	if !errors.Is(got, domain.ErrStorage) || !errors.Is(got, cause) {
		t.Errorf("storage error must match both ErrStorage and the cause: %v", got)
	}
}

func TestMapError_StorageErrorNotDoubleWrapped(t *testing.T) {
	t.Parallel()

	inner := domain.NewStorageError("decode", errors.New("bad json"))
	if got := sqlite.MapError(inner, "contact", "x"); got != inner {
		t.Errorf("MapError(storage error) = %v, want it unchanged", got)
	}
}

func TestMapError_DriverErrorFromQuery(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("database disk image is malformed"))

	_, err = db.QueryContext(context.Background(), "SELECT 1")
	got := sqlite.MapError(err, "contact", "list")
	if !errors.Is(got, domain.ErrStorage) {
		t.Errorf("expected storage error, got %v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

// Constraint violations are produced by a real database so the driver's
// extended result codes are exercised.

func TestMapError_UniqueViolation(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	ctx := context.Background()

	if err := insertBoard(ctx, db, uuid.New(), "dup.example"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := insertBoard(ctx, db, uuid.New(), "dup.example")

	if got := sqlite.MapError(err, "job_board", "dup"); !errors.Is(got, domain.ErrAlreadyExists) {
		t.Errorf("unique violation: got %v, want ErrAlreadyExists", got)
	}
}

func TestMapError_CheckViolation(t *testing.T) {
	db := testhelper.SetupTestDB(t)

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO interview_stages (id, job_application_id, round, questions, created_at, updated_at)
		 VALUES (?, ?, 0, '[]', 'x', 'x')`,
		uuid.NewString(), uuid.NewString(),
	)

	if got := sqlite.MapError(err, "interview_stage", "x"); !errors.Is(got, domain.ErrValidation) {
		t.Errorf("check violation: got %v, want ErrValidation", got)
	}
}

func TestMapError_NotNullViolation(t *testing.T) {
	db := testhelper.SetupTestDB(t)

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO contacts (id, job_application_id, name, created_at, updated_at) VALUES (?, NULL, 'A', 'x', 'x')`,
		uuid.NewString(),
	)

	if got := sqlite.MapError(err, "contact", "x"); !errors.Is(got, domain.ErrValidation) {
		t.Errorf("not null violation: got %v, want ErrValidation", got)
	}
}
