package retry

import "context"

// Context wraps a 'context.Context', additionally exposing the number of the attempt being made.
type Context struct {
	context.Context
	attempt int
}

// NewContext wraps the given context, starting at the first attempt.
func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, attempt: 1}
}

// Attempt returns the current attempt number, starting at one.
func (c *Context) Attempt() int {
	return c.attempt
}
