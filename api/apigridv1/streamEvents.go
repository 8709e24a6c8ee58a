package apigridv1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

const eventsBuffer = 256

// streamEvents writes every change as newline delimited JSON until the
// client goes away. The optional query parameter limit ends the stream
// after that many events.
func streamEvents(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: bad limit '%s'", ErrBadRequest, raw)
		}
		limit = n
	}

	events, unsubscribe := GetServicer(ctx).Subscribe(eventsBuffer)
	defer unsubscribe()

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}

	for sent := 0; limit == 0 || sent < limit; sent++ {
		select {
		case <-ctx.Done():
			return nil
		case e, open := <-events:
			if !open {
				return nil
			}
			err := writeLine(w, e)
			if err != nil {
				return err
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
	}

	return nil
}
