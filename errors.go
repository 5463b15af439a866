package bmpstat

import "fmt"

// RangeError reports a coordinate outside its valid half-open range.
// Validation runs before any mutation, so a returned RangeError means the
// buffer was left untouched.
type RangeError struct {
	// Coord names the coordinate that violated its bound.
	Coord string
	// Value is the offending value; valid values satisfy Start <= v < End.
	Value int
	Start int
	End   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bmpstat: %s out of range: %d not in [%d, %d)", e.Coord, e.Value, e.Start, e.End)
}

// PayloadSizeError reports a SetPayload call whose byte count does not
// equal the current payload size. Nothing is written on mismatch.
type PayloadSizeError struct {
	Got  int
	Want int
}

func (e *PayloadSizeError) Error() string {
	return fmt.Sprintf("bmpstat: payload size mismatch: got %d bytes, want %d", e.Got, e.Want)
}
