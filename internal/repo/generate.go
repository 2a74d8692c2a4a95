// Package repo holds the ent-generated data access layer.
// Run `go generate ./internal/repo` after changing internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
