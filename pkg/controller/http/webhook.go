package http

import (
	"crypto/subtle"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/iris/pkg/domain/interfaces"
	"github.com/secmon-lab/iris/pkg/domain/model"
	"github.com/secmon-lab/iris/pkg/utils/errutil"
	"github.com/secmon-lab/iris/pkg/utils/logging"
)

// bearerAuth validates the Authorization header against the shared webhook
// secret. The comparison is constant time.
func bearerAuth(secret string) func(http.Handler) http.Handler {
	expect := "Bearer " + secret

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			if subtle.ConstantTimeCompare([]byte(got), []byte(expect)) != 1 {
				errutil.HandleHTTP(r.Context(), w,
					goerr.New("invalid authorization token"),
					http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// webhookHandler parses the delivery body into an event and hands it to the
// dispatcher. The dispatcher decides the response status code.
func webhookHandler(dispatcher interfaces.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w,
				goerr.Wrap(err, "failed to read request body"),
				http.StatusBadRequest)
			return
		}

		ev, err := model.ParseEvent(body)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		ctx := logging.With(r.Context(),
			logging.From(r.Context()).With("event_id", ev.ID))

		code, err := dispatcher.Dispatch(ctx, ev)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		w.WriteHeader(code)
	}
}
