package graph

import (
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/scratchdata/linkfeed/pkg/storage/database"
)

//go:embed schema.graphql
var Schema string

type SchemaOptions struct {
	// Zero leaves the engine default in place
	MaxDepth       int
	MaxParallelism int
}

// NewSchema parses the link schema and binds it to a resolver backed by db.
func NewSchema(db database.Database, opts SchemaOptions) (*graphql.Schema, error) {
	schemaOpts := []graphql.SchemaOpt{
		graphql.Logger(panicLogger{}),
	}
	if opts.MaxDepth > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxDepth(opts.MaxDepth))
	}
	if opts.MaxParallelism > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxParallelism(opts.MaxParallelism))
	}

	return graphql.ParseSchema(Schema, NewResolver(db), schemaOpts...)
}
