package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/config"
	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/patient"
)

// Store is the pooled handle onto the patients table.
type Store struct {
	db *sqlx.DB
}

// Open establishes the connection pool for the configured driver and
// verifies it with a ping.
func Open(cfg *config.Config) (*Store, error) {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Connect(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing database handle. The handle can be a real
// connection for production use or a mock database within unit tests.
func NewWithDB(db *sql.DB, driver string) *Store {
	return &Store{db: sqlx.NewDb(db, driver)}
}

func buildDSN(cfg *config.Config) (string, error) {
	switch cfg.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database), nil
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database), nil
	default:
		return "", fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// keyField is one optional natural-key column consulted during duplicate
// detection. A field whose candidate value is absent is not checked.
type keyField struct {
	column string
	value  *string
}

func duplicateKeys(c patient.Candidate) []keyField {
	return []keyField{
		{column: "phone_number", value: c.PhoneNumber},
		{column: "email", value: c.Email},
	}
}

// FindDuplicate reports whether a stored row already matches the candidate
// on any present key field. A candidate with no key field present is never a
// duplicate and no query is issued for it.
func (s *Store) FindDuplicate(ctx context.Context, c patient.Candidate) (bool, error) {
	var conds []string
	var args []interface{}
	for _, k := range duplicateKeys(c) {
		if k.value == nil || *k.value == "" {
			continue
		}
		conds = append(conds, k.column+" = ?")
		args = append(args, *k.value)
	}
	if len(conds) == 0 {
		return false, nil
	}

	query := s.db.Rebind("SELECT id FROM patients WHERE " + strings.Join(conds, " OR ") + " LIMIT 1")
	var id int64
	err := s.db.GetContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("duplicate check for %q: %w", c.Name, err)
	}
	return true, nil
}

const insertPatient = `
	INSERT INTO patients (name, sex, date_of_birth, phone_number, email,
		address, hmo, next_appointment, outstanding, is_family_head,
		family_id, created_at)
	VALUES (:name, :sex, :date_of_birth, :phone_number, :email, :address,
		:hmo, :next_appointment, :outstanding, :is_family_head, :family_id,
		:created_at)`

// Insert appends one stored record to the patients table.
func (s *Store) Insert(ctx context.Context, rec patient.Record) error {
	if _, err := s.db.NamedExecContext(ctx, insertPatient, rec); err != nil {
		return fmt.Errorf("insert patient %q: %w", rec.Name, err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() error {
	return s.db.Close()
}
