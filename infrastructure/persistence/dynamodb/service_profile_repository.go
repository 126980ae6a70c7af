package dynamodb

import (
	"context"

	"fitit-backend/domain/entities"

	"go.uber.org/zap"
)

// professionIndex is the GSI keyed on the profile's profession.
const professionIndex = "profession-index"

// ServiceProfileRepository stores professional listings.
type ServiceProfileRepository struct {
	*Repository[entities.ServiceProfile]
}

// NewServiceProfileRepository creates a service profile repository.
func NewServiceProfileRepository(client DynamoDBAPI, tableName string, logger *zap.Logger) *ServiceProfileRepository {
	return &ServiceProfileRepository{
		Repository: NewRepository[entities.ServiceProfile](client, Config{
			TableName:  tableName,
			EntityName: "service profile",
		}, logger),
	}
}

// FindByProfession returns all profiles with an exact profession.
func (r *ServiceProfileRepository) FindByProfession(ctx context.Context, profession string) ([]entities.ServiceProfile, error) {
	return r.queryByIndex(ctx, professionIndex, "profession", profession)
}

// FindAvailable returns all profiles currently accepting work.
func (r *ServiceProfileRepository) FindAvailable(ctx context.Context) ([]entities.ServiceProfile, error) {
	return r.scanWithFilter(ctx,
		"#avail = :avail",
		map[string]string{"#avail": "available"},
		map[string]interface{}{":avail": true},
	)
}
