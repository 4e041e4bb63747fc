package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// WithTransaction abre a transação, executa fn com o contexto transacional e faz
// commit se fn retornar nil; qualquer erro (ou panic) provoca rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
