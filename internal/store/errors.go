package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when the local record has never been
	// saved. Callers treat it as an empty record.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrBackupNotFound is returned when a backup key does not exist.
	ErrBackupNotFound = errors.New("backup was not found")

	// ErrBackupNotSaved is returned when a backup INSERT completes without
	// error but affects no rows.
	ErrBackupNotSaved = errors.New("backup was not saved")

	// ErrMirrorNotFound is returned when the mirror file does not exist yet.
	ErrMirrorNotFound = errors.New("mirror file was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingDocument is returned when a record cannot be encoded or
	// decoded for storage.
	ErrEncodingDocument = errors.New("failed to encode document")
)
