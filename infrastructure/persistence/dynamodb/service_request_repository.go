package dynamodb

import (
	"context"

	"fitit-backend/domain/entities"
	apperrors "fitit-backend/pkg/errors"

	"go.uber.org/zap"
)

// Secondary indexes on the service requests table.
const (
	customerIndex     = "customerId-index"
	professionalIndex = "professionalId-index"
	statusIndex       = "status-index"
)

// ServiceRequestRepository stores customer job postings.
type ServiceRequestRepository struct {
	*Repository[entities.ServiceRequest]
}

// NewServiceRequestRepository creates a service request repository.
func NewServiceRequestRepository(client DynamoDBAPI, tableName string, logger *zap.Logger) *ServiceRequestRepository {
	return &ServiceRequestRepository{
		Repository: NewRepository[entities.ServiceRequest](client, Config{
			TableName:  tableName,
			EntityName: "service request",
		}, logger),
	}
}

// FindByCustomer returns all requests posted by a customer.
func (r *ServiceRequestRepository) FindByCustomer(ctx context.Context, customerID string) ([]entities.ServiceRequest, error) {
	return r.queryByIndex(ctx, customerIndex, "customerId", customerID)
}

// FindByProfessional returns all requests claimed by a professional.
func (r *ServiceRequestRepository) FindByProfessional(ctx context.Context, professionalID string) ([]entities.ServiceRequest, error) {
	return r.queryByIndex(ctx, professionalIndex, "professionalId", professionalID)
}

// FindByStatus returns all requests in an exact lifecycle state.
func (r *ServiceRequestRepository) FindByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.ServiceRequest, error) {
	return r.queryByIndex(ctx, statusIndex, "status", string(status))
}

// UpdateStatus moves a request to a new lifecycle state, rejecting
// transitions the domain does not allow. The read and the conditional write
// are separate round-trips, so a concurrent transition loses at the write.
func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, id string, next entities.RequestStatus) (*entities.ServiceRequest, error) {
	if !next.IsValid() {
		return nil, apperrors.NewValidationError("unknown status " + string(next))
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, apperrors.NewConflictError(
			"cannot move request from " + string(current.Status) + " to " + string(next),
		).WithCode("INVALID_TRANSITION")
	}

	return r.Update(ctx, id, map[string]interface{}{"status": string(next)})
}
