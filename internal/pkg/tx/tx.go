package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

const KeyTx = key("tx")

// DBRepo is the subset of the repository needed to open a transaction.
type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// Tx is the per-request transaction handle injected by the middleware.
type Tx struct {
	DbRepo DBRepo
}

func TxMiddlewareHTTP(repo DBRepo) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a single database transaction taken from the
// request context.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("no transaction handle in context")
	}
	return t.DbRepo.WithTx(ctx, cb)
}
