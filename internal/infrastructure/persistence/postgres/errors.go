package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reconhece violações de unicidade traduzidas pelo GORM ou
// vindas diretamente do driver pgx
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// translateWriteError converte violação de unicidade em ErrDuplicateKey
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return domainerrors.ErrDuplicateKey
	}
	return err
}
