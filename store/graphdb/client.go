// Package graphdb wraps the graph database behind a small Client interface so
// repositories can be tested against an in-memory fake.
package graphdb

import (
	"context"
	"errors"
)

// Client defines the minimal contract required by repositories to interact
// with the underlying graph database.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	// ExecuteWriteTx runs stmts in one write transaction: either all of them
	// commit or none does.
	ExecuteWriteTx(ctx context.Context, stmts []Statement) error
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Statement is one cypher query with its parameters.
type Statement struct {
	Query  string
	Params map[string]any
}

// Result is a simplified representation of a query response.
type Result struct {
	Records []Record
}

// Record groups key-value pairs returned from the graph engine.
type Record map[string]any

// Options configures a graph client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graphdb: URI is required")
