package db

import "context"

// watchQuery implements the live-query contract: run query once for the
// initial snapshot, then re-run and re-emit whenever one of the given tables
// changes, until ctx is cancelled. The error of the initial run is returned
// synchronously so callers can distinguish "cannot watch" from "stream
// ended"; an error on a later run closes the stream.
func watchQuery[T any](ctx context.Context, broker *ChangeBroker, tables []string, query func() (T, error)) (<-chan T, error) {
	// Subscribe before the initial read so a write landing in between
	// shows up as a pending signal instead of being missed.
	signal, cancel := broker.Subscribe(tables...)

	initial, err := query()
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan T, 1)

	go func() {
		defer cancel()
		defer close(out)

		select {
		case out <- initial:
		case <-ctx.Done():
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-signal:
				snapshot, err := query()
				if err != nil {
					return
				}
				select {
				case out <- snapshot:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
