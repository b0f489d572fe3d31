package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/pkg/api"
	"github.com/voidshard/fortitrack/pkg/api/http/common"
	"github.com/voidshard/fortitrack/pkg/structs"
)

type ctxKey int

const actorKey ctxKey = 0

// loggingMiddleware shims in a handler middleware that logs requests.
func loggingMiddleware(log logrus.FieldLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(logrus.Fields{
				"method": r.Method,
				"uri":    r.RequestURI,
				"length": r.ContentLength,
				"user":   r.Header.Get(common.HEADER_USER),
			}).Debug("request")
			next.ServeHTTP(w, r)
		})
	}
}

// identityMiddleware resolves the acting user from the identity header.
//
// Requests without the header continue with no actor; the service rejects them
// for anything that needs one.
func identityMiddleware(svc api.API) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(common.HEADER_USER)
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			u, err := svc.Identify(r.Context(), id)
			if err != nil {
				http.Error(w, err.Error(), mapError(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, u)))
		})
	}
}

// actor returns the acting user of the request, or nil
func actor(r *http.Request) *structs.User {
	u, _ := r.Context().Value(actorKey).(*structs.User)
	return u
}
