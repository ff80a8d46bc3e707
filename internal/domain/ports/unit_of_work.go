package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações
type UnitOfWork interface {
	// WithTransaction executa fn numa única transação; qualquer erro
	// retornado por fn desfaz todas as escritas
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
