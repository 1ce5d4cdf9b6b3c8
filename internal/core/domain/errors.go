package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedApiCompat is returned when a unit's API compatibility level
	// has no target framework mapping. It is fatal for that unit's descriptor
	// only.
	ErrUnsupportedApiCompat = zerr.New("unsupported api compatibility level")

	// ErrResponseFileNotFound is returned when a response file identifier
	// resolves to no file in the project root or any system directory.
	ErrResponseFileNotFound = zerr.New("response file not found")

	// ErrUnitNotFound is returned when a referenced unit is missing from the
	// graph snapshot.
	ErrUnitNotFound = zerr.New("unit not found")

	// ErrVerificationFailed is returned when the post-sync build verification
	// command exits non-zero.
	ErrVerificationFailed = zerr.New("build verification failed")
)
