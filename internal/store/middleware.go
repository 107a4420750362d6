package store

import (
	"context"
	"net/http"
)

type ctxKey string

const ctxVisitKey ctxKey = "visit"

func GetVisitFromCtx(ctx context.Context) *Visit {
	if v, ok := ctx.Value(ctxVisitKey).(*Visit); ok {
		return v
	}
	return nil
}

// VisitMiddleware loads the visitor session and puts it in the request context.
func (s *Store) VisitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := s.Visit(r)
		ctx := context.WithValue(r.Context(), ctxVisitKey, v)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
