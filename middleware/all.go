package middleware

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Fetch produces one exchange. It is the unit All runs concurrently.
type Fetch func(context.Context) (*http.Response, error)

// All runs the fetches concurrently and returns their responses in argument
// order. The first failure cancels the shared context and becomes All's
// error; responses already collected are closed, so nothing leaks on the
// failure path.
func All(ctx context.Context, fetches ...Fetch) ([]*http.Response, error) {
	g, ctx := errgroup.WithContext(ctx)
	out := make([]*http.Response, len(fetches))

	for i, fetch := range fetches {
		i, fetch := i, fetch
		g.Go(func() error {
			resp, err := fetch(ctx)
			if err != nil {
				return err
			}
			out[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, resp := range out {
			if resp != nil {
				_ = resp.Body.Close()
			}
		}
		return nil, err
	}
	return out, nil
}
