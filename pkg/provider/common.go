// Package provider implements HTTP clients for the external weather and
// news collaborators. Transport errors and non-2xx statuses surface as
// network failures, schema violations as malformed responses. There is no
// retry policy here; a refresh is the caller's responsibility.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/moodfeed/moodfeed/pkg/domain"
)

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// doRequest executes the request through the circuit breaker and maps
// transport and status errors to the network failure kind. The caller owns
// the response body on success.
func doRequest(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, domain.WrapFailure(domain.ErrNetwork, err, "circuit breaker open")
		}
		return nil, domain.WrapFailure(domain.ErrNetwork, err, "request failed")
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, domain.Failuref(domain.ErrNetwork, "unexpected result type from circuit breaker")
	}
	return resp, nil
}
