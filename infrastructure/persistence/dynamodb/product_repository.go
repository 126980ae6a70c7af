package dynamodb

import (
	"context"

	"fitit-backend/domain/entities"

	"go.uber.org/zap"
)

// categoryIndex is the GSI keyed on the product category.
const categoryIndex = "category-index"

// ProductRepository stores tools and equipment listings.
type ProductRepository struct {
	*Repository[entities.Product]
}

// NewProductRepository creates a product repository.
func NewProductRepository(client DynamoDBAPI, tableName string, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{
		Repository: NewRepository[entities.Product](client, Config{
			TableName:  tableName,
			EntityName: "product",
		}, logger),
	}
}

// FindByCategory returns all products in an exact category.
func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]entities.Product, error) {
	return r.queryByIndex(ctx, categoryIndex, "category", category)
}
