// Package graphqlserver wires the schema to graphql-go.
package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"ashwi.GO/graphql"
	"ashwi.GO/graphql/resolvers"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	DB *gorm.DB
}

// Query returns the query resolver.
func (r *RootResolver) Query() *resolvers.QueryResolver {
	return resolvers.NewQueryResolver(r.DB)
}

// NewSchema parses the schema (base plus registered extensions) and
// returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
