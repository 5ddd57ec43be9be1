package todosdk

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/idx"
)

const requestIDHeader = "X-Request-ID"

// loggingRoundTripper stamps each outgoing request with a ULID request ID and
// logs the round trip at debug level.
type loggingRoundTripper struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func (rt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := idx.New().String()
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := rt.base.RoundTrip(req)
	elapsed := time.Since(start)

	logger := rt.logger.With(
		"request_id", requestID,
		"method", req.Method,
		"url", req.URL.Redacted(),
		"elapsed", elapsed,
	)

	if err != nil {
		logger.Debug("request failed", "error", err)
		return nil, err
	}

	logger.Debug("request completed", "status", resp.StatusCode)
	return resp, nil
}
