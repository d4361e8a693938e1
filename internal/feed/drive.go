package feed

import "context"

// Drain runs c to exhaustion outside a Bubble Tea program, executing each
// command inline. It stops early when a page fails or ctx is done and
// returns the controller as it stood.
func Drain(ctx context.Context, c Controller) (Controller, error) {
	for c.HasMore() {
		if err := ctx.Err(); err != nil {
			return c, err
		}
		next, cmd := c.Advance()
		if cmd == nil {
			return next, nil
		}
		c, _ = next.Update(cmd())
		if c.State() == Failed {
			return c, c.Err()
		}
	}
	return c, nil
}
