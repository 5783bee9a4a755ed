package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Loot table errors
	ErrMsgLootTableNotFound = "loot table not found"

	// Input errors
	ErrMsgInvalidSheet  = "invalid sheet"
	ErrMsgMissingInput  = "missing required input"
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgUnknownBucket = "loot bucket not found"
	ErrMsgUnknownReward = "reward not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrLootTableNotFound is the only structural failure of the resolution core:
	// a table id that is absent from the loaded index means the inputs disagree.
	ErrLootTableNotFound = errors.New(ErrMsgLootTableNotFound)

	ErrInvalidSheet  = errors.New(ErrMsgInvalidSheet)
	ErrMissingInput  = errors.New(ErrMsgMissingInput)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrUnknownBucket = errors.New(ErrMsgUnknownBucket)
	ErrUnknownReward = errors.New(ErrMsgUnknownReward)
)
