package store

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassifyNil(t *testing.T) {
	if err := classify("op", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestClassifyServerErrorIsPermanent(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", Message: "violates check constraint"}
	err := classify("upsert posts", fmt.Errorf("driver: %w", pgErr))

	if IsTransient(err) {
		t.Fatal("a server-reported error must never be retried")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Op != "upsert posts" {
		t.Errorf("expected an OpError for the upsert, got %v", err)
	}
}

func TestClassifyConnectionErrorsAreTransient(t *testing.T) {
	cases := map[string]error{
		"reset":   syscall.ECONNRESET,
		"refused": syscall.ECONNREFUSED,
		"timeout": &net.OpError{Op: "read", Err: errors.New("i/o timeout")},
		"dns":     &net.DNSError{Err: "no such host", IsTimeout: true},
		"wrapped": fmt.Errorf("write failed: %w", syscall.EPIPE),
	}

	for name, cause := range cases {
		t.Run(name, func(t *testing.T) {
			if !IsTransient(classify("upsert posts", cause)) {
				t.Errorf("expected %v to be transient", cause)
			}
		})
	}
}

func TestClassifyRecordNotFoundIsPermanentAndStillMatchable(t *testing.T) {
	err := classify("select calendar_data", gorm.ErrRecordNotFound)

	if IsTransient(err) {
		t.Fatal("record-not-found is not a transport failure")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatal("wrapping must keep gorm.ErrRecordNotFound matchable")
	}
}

func TestIsTransientOnForeignError(t *testing.T) {
	if IsTransient(errors.New("some unrelated error")) {
		t.Fatal("unclassified errors are not transient")
	}
}
