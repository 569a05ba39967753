package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// DefaultSqliteDSN is the file-backed development database.
const DefaultSqliteDSN = "renpy_editor.db"

// DatabaseSettings holds the connection settings of the relational store
type DatabaseSettings struct {
	Type string `yaml:"type" env:"DATABASE_TYPE" validate:"omitempty,oneof=sqlite postgres"`
	DSN  string `yaml:"dsn" env:"DATABASE_URL" env-default:"renpy_editor.db"`
	// Name is created on the server when set and the type is postgres
	Name string `yaml:"name" env:"DATABASE_NAME"`
}

// ResolvedType returns the database type. A postgres:// or postgresql:// DSN
// always means postgres; otherwise the configured type applies, defaulting to sqlite.
func (s *DatabaseSettings) ResolvedType() string {
	if strings.HasPrefix(s.DSN, "postgres://") || strings.HasPrefix(s.DSN, "postgresql://") {
		return PostgresDbType
	}
	if s.Type != "" {
		return s.Type
	}
	return SqliteDbType
}

// SqlitePath strips URL-style prefixes such as sqlite:/// from a sqlite DSN.
func (s *DatabaseSettings) SqlitePath() string {
	dsn := s.DSN
	for _, prefix := range []string{"sqlite+aiosqlite:///", "sqlite:///", "sqlite://"} {
		if strings.HasPrefix(dsn, prefix) {
			dsn = strings.TrimPrefix(dsn, prefix)
			break
		}
	}
	if dsn == "" {
		return DefaultSqliteDSN
	}
	return dsn
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.ResolvedType() == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}

	return nil
}
