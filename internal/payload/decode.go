package payload

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed tags payloads that cannot be decoded as the expected tree.
// A malformed payload aborts the whole render; no partial output is kept.
var ErrMalformed = errors.New("malformed listing payload")

// Valid reports whether raw is syntactically valid JSON. The orchestrator
// checks this before dispatching so structural failures surface once, ahead
// of any shape-specific decode.
func Valid(raw []byte) bool {
	return json.Valid(raw)
}

// Decode parses a common-spine listing payload.
func Decode(raw []byte) (*Listing, error) {
	var listing Listing
	if err := json.Unmarshal(raw, &listing); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &listing, nil
}

// DecodeWeekly parses a weekly/fortnightly tribunal payload.
func DecodeWeekly(raw []byte) (*WeeklyListing, error) {
	var listing WeeklyListing
	if err := json.Unmarshal(raw, &listing); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &listing, nil
}

// DecodePDDA parses a PDDA-sourced crown listing payload.
func DecodePDDA(raw []byte) (*PDDAListing, error) {
	var listing PDDAListing
	if err := json.Unmarshal(raw, &listing); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &listing, nil
}
