package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"bookclub/internal/adapters/storage"
	domain "bookclub/internal/domain/member"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new member store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// List returns all members in insertion order.
// POST: Returns every persisted member; empty slice when none exist
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, created_at FROM member ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Member
	for rows.Next() {
		entity, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// GetByName retrieves a Member by exact, case-sensitive name.
// PRE: name is non-empty
// POST: Returns the entity or ErrNotFound
func (s *SQLiteStore) GetByName(ctx context.Context, name string) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, created_at FROM member WHERE name = ?", name)

	entity, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Member{}, domain.ErrNotFound
	}
	return entity, err
}

// Insert persists a new Member with a server-assigned id.
// PRE: entity has been validated; entity.ID is ignored
// POST: Returns the stored entity with its assigned id, or ErrDuplicateName
// INVARIANT: Name uniqueness enforced by the UNIQUE column constraint
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Member) (domain.Member, error) {
	if entity.CreatedAt.IsZero() {
		entity.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO member (name, created_at) VALUES (?, ?)",
		entity.Name, entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Member{}, domain.ErrDuplicateName
		}
		return domain.Member{}, err
	}
	entity.ID, err = res.LastInsertId()
	if err != nil {
		return domain.Member{}, err
	}
	return entity, nil
}

// Count returns the number of persisted members.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM member").Scan(&n)
	return n, err
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanMember reads one member row.
func scanMember(row rowScanner) (domain.Member, error) {
	var entity domain.Member
	var createdAt string
	if err := row.Scan(&entity.ID, &entity.Name, &createdAt); err != nil {
		return domain.Member{}, err
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return domain.Member{}, fmt.Errorf("corrupt created_at for member %d: %w", entity.ID, err)
	}
	entity.CreatedAt = ts
	return entity, nil
}
