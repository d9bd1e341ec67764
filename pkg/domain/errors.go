package domain

import "errors"

// ErrExerciseNotFound is returned when an exercise ID cannot be found by a loader.
var ErrExerciseNotFound = errors.New("exercise not found")

// ErrInvalidExercise is returned when an exercise definition is incomplete.
var ErrInvalidExercise = errors.New("invalid exercise")
