package ports

import "context"

// BuildVerifier runs the external build-verification step after a full sync.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type BuildVerifier interface {
	// Verify executes command with root as working directory.
	Verify(ctx context.Context, root string, command []string) error
}
