package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/utils/errors"
)

// InternalMiddleware checks for static API key in header. An empty key
// disables the internal routes.
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("Authorization"))
			want := []byte("Bearer " + apiKey)
			if apiKey == "" || subtle.ConstantTimeCompare(got, want) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrPermissionDenied))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
