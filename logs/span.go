package logs

// Span tags log records belonging to one logical operation, such as a single
// reduction job.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
