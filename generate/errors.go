package generate

import "errors"

// Sentinel errors for maze generation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("generate: grid is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name or value.
	ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")

	// ErrGenerationLimitExceeded is returned when a random walk exceeds its step limit.
	ErrGenerationLimitExceeded = errors.New("generate: step limit exceeded")

	// ErrGridNotEmpty is returned when the grid already carries links.
	ErrGridNotEmpty = errors.New("generate: grid already has links")

	// ErrDisconnectedGrid is returned when the included cells form more than one region,
	// so no spanning tree can cover them.
	ErrDisconnectedGrid = errors.New("generate: included cells are not connected")

	// ErrMaskUnsupported is returned by the biased scan algorithms on masked grids.
	ErrMaskUnsupported = errors.New("generate: algorithm does not support masked grids")

	// ErrNotSpanningTree is returned by Verify when the links do not form a spanning tree.
	ErrNotSpanningTree = errors.New("generate: links do not form a spanning tree")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("generate: invalid option supplied")
)
