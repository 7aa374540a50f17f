package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
)

// OpError wraps a store failure with the operation that failed and a
// transient/permanent tag. Transient failures are transport-level (connection
// dropped, read timed out) and safe to retry; permanent failures came back
// from the database itself (constraint or policy violations) and retrying
// would only repeat them.
type OpError struct {
	Op        string
	Err       error
	Transient bool
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a store failure worth retrying
func IsTransient(err error) bool {
	var opErr *OpError
	return errors.As(err, &opErr) && opErr.Transient
}

// classify wraps a database error, tagging it transient or permanent.
// gorm.ErrRecordNotFound passes through the wrapper via Unwrap so callers can
// still match it with errors.Is.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err, Transient: isTransportError(err)}
}

func isTransportError(err error) bool {
	// Anything the server answered with is a semantic error, not transport.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}
