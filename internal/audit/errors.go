package audit

import (
	"errors"
	"fmt"
)

// Classification failure taxonomy. All three are recovered inside
// ClassifyLine, which demotes the offending line to an UnparsedLine; none of
// them cross the package boundary during normal processing.
var (
	ErrTimeParse        = errors.New("audit envelope timestamp not found")
	ErrMissingAttr      = errors.New("required attribute missing")
	ErrUnknownOperation = errors.New("unknown operation")
)

// require reports the first key absent from the map.
func (m AttrMap) require(keys ...string) error {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingAttr, k)
		}
	}
	return nil
}

// epoch resolves the event time from the msg attribute.
func (m AttrMap) epoch() (int64, error) {
	msg, ok := m["msg"]
	if !ok {
		return 0, fmt.Errorf("%w: msg", ErrMissingAttr)
	}
	return EpochFrom(msg)
}
