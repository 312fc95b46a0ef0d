package ebml

import (
	"errors"
	"fmt"
)

// ErrIoError marks an underlying source/sink failure. The error returned
// wraps both ErrIoError and the original error, so errors.Is matches
// either one.
var ErrIoError = errors.New("ebml: i/o error")

// ErrUnsupportedFeature is returned when the input uses a feature this
// codec deliberately does not implement (an indeterminate-size VINT),
// and by WriteVint for a value that would need a VINT wider than 8
// bytes.
var ErrUnsupportedFeature = errors.New("ebml: unsupported feature")

// ErrCorruptedFileData is returned for framing violations: a malformed
// VINT (including a first byte of 0x00, which would mean a width over 8
// bytes), a child element whose declared size overruns its parent, or a
// short read in the middle of an element.
var ErrCorruptedFileData = errors.New("ebml: corrupted file data")

// ErrInconsistentTagNesting is returned by Writer.Write when a
// MasterEnd event's ID does not match the innermost open master. The
// writer's state is undefined afterward; it must be discarded.
var ErrInconsistentTagNesting = errors.New("ebml: inconsistent tag nesting")

// ErrOpenMastersOnFlush is returned by Writer.Flush when one or more
// masters are still open.
var ErrOpenMastersOnFlush = errors.New("ebml: open masters on flush")

// CorruptedTagDataError reports that a leaf's payload violates its
// declared data type.
type CorruptedTagDataError struct {
	ID     uint64
	Reason string
}

func (e *CorruptedTagDataError) Error() string {
	return fmt.Sprintf("ebml: corrupted tag data for id 0x%X: %s", e.ID, e.Reason)
}

func (e *CorruptedTagDataError) Is(target error) bool {
	return target == ErrCorruptedFileData
}

// InvalidTagIDError reports that a tag ID has no valid width marker: its
// value lies outside the ID range of every width from 1 to 8 bytes (this
// covers every value above 2^57 - 1, the largest 8-byte ID).
type InvalidTagIDError struct {
	ID uint64
}

func (e *InvalidTagIDError) Error() string {
	return fmt.Sprintf("ebml: invalid tag id 0x%X", e.ID)
}

func wrapIoError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrIoError, err)
}
