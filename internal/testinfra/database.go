// Package testinfra reúne utilitários compartilhados pelos testes.
package testinfra

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rafabene/federa-backend/internal/infrastructure/persistence/postgres"
)

// TB é o subconjunto de testing.TB usado aqui (atendido também por GinkgoT())
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// NewTestDatabase abre um SQLite em memória com o schema migrado.
// Uma única conexão serializa as transações, o que torna determinísticos
// os testes de concorrência.
func NewTestDatabase(t TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), postgres.GormConfig("error"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}
