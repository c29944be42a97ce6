package model

import "errors"

// Errors returned by the decode layer, the state machine and storage
var (
	// Request errors
	ErrDecodeFailure = errors.New("malformed request")
	ErrInvalidConfig = errors.New("invalid game configuration")

	// Game errors
	ErrIllegalMove            = errors.New("illegal move")
	ErrGameNotInitialized     = errors.New("game has not been started")
	ErrGameAlreadyInitialized = errors.New("game has already been started")
	ErrGameOver               = errors.New("game is already over")
)
