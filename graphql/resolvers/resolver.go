package resolvers

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	gqlregistry "ashwi.GO/graphql/registry"
	catalogRepo "ashwi.GO/model/repository/catalog"
)

func init() {
	gqlregistry.RegisterQueryResolverFactory(func(db interface{}) interface{} {
		return NewQueryResolver(db.(*gorm.DB))
	})
}

// QueryResolver is the single resolver for all Query fields.
// Methods live in query.go; mapping lives in mapper.go.
// New Query fields: use RegisterSchemaExtension + add a method here,
// or use extension(name, args) for fully dynamic resolvers.
type QueryResolver struct {
	db *gorm.DB
}

func NewQueryResolver(db *gorm.DB) *QueryResolver {
	return &QueryResolver{db: db}
}

func (r *QueryResolver) products() *catalogRepo.ProductRepository {
	return catalogRepo.NewProductRepository(r.db)
}

func (r *QueryResolver) categories() *catalogRepo.CategoryRepository {
	return catalogRepo.NewCategoryRepository(r.db)
}

func (r *QueryResolver) subcategories() *catalogRepo.SubcategoryRepository {
	return catalogRepo.NewSubcategoryRepository(r.db)
}

// Extension dispatches to registered custom resolvers.
func (r *QueryResolver) Extension(ctx context.Context, args struct {
	Name string
	Args *string
}) (*string, error) {
	m := make(map[string]interface{})
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
