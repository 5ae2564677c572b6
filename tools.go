//go:build tools

package tools

// Developer tooling that is not linked into any binary.
//
//   - goose is pinned through the tool directive in go.mod:
//     go tool goose -dir migrations postgres "$DATABASE_DSN" status
//     Deployments run cmd/migrate, which embeds the same files.
//   - Service mocks come from github.com/matryer/moq. With moq on PATH,
//     go generate ./internal/service/... rewrites the *_mock_test.go files.
