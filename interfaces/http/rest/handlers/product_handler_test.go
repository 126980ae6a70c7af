package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitit-backend/domain/entities"
	apperrors "fitit-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockProductRepo is a testify mock for the product repository port.
type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, limit int32) ([]entities.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Product), args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, product entities.Product) (*entities.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*entities.Product, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) FindByCategory(ctx context.Context, category string) ([]entities.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Product), args.Error(1)
}

func newProductTestRouter(repo *mockProductRepo) *chi.Mux {
	logger := zap.NewNop()
	h := NewProductHandler(repo, apperrors.NewErrorHandler(logger, false), logger)

	r := chi.NewRouter()
	r.Post("/products", h.Create)
	r.Get("/products", h.List)
	r.Get("/products/{productID}", h.Get)
	r.Put("/products/{productID}", h.Update)
	r.Delete("/products/{productID}", h.Delete)
	return r
}

func TestProductHandler_Create(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
		return p.Name == "Hammer" && p.Category == "tools" && p.Price == 12.50
	})).Return(&entities.Product{
		ID: "prod-1", Name: "Hammer", Category: "tools", Price: 12.50,
		CreatedAt: "2026-08-29T10:00:00Z", UpdatedAt: "2026-08-29T10:00:00Z",
	}, nil)

	body := bytes.NewBufferString(`{"id":"prod-1","name":"Hammer","category":"tools","price":12.50}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	repo.AssertExpectations(t)

	var resp struct {
		Success bool             `json:"success"`
		Data    entities.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "prod-1", resp.Data.ID)
	assert.NotEmpty(t, resp.Data.CreatedAt)
}

func TestProductHandler_Create_InvalidPayload(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	// Missing required name and category.
	body := bytes.NewBufferString(`{"price":12.50}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestProductHandler_Create_MalformedJSON(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{"name":`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestProductHandler_Create_DuplicateID(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("entities.Product")).
		Return(nil, apperrors.NewConflictError("product with id prod-1 already exists").WithCode("DUPLICATE_ID"))

	body := bytes.NewBufferString(`{"id":"prod-1","name":"Hammer","category":"tools","price":12.50}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "DUPLICATE_ID", resp.Code)
	assert.Equal(t, string(apperrors.ErrorTypeConflict), resp.Type)
}

func TestProductHandler_Get(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	repo.On("GetByID", mock.Anything, "prod-1").Return(&entities.Product{
		ID: "prod-1", Name: "Hammer", Category: "tools", Price: 12.50,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products/prod-1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	repo.On("GetByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("product", "missing"))

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_List(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	repo.On("List", mock.Anything, int32(0)).Return([]entities.Product{
		{ID: "prod-1", Name: "Hammer", Category: "tools"},
		{ID: "prod-2", Name: "Drill", Category: "tools"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestProductHandler_List_WithLimit(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	repo.On("List", mock.Anything, int32(5)).Return([]entities.Product{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products?limit=5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestProductHandler_List_ByCategory(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	repo.On("FindByCategory", mock.Anything, "tools").Return([]entities.Product{
		{ID: "prod-1", Name: "Hammer", Category: "tools"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products?category=tools", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertNotCalled(t, "List")
	repo.AssertExpectations(t)
}

func TestProductHandler_Update(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	// Only the fields present in the payload reach the repository.
	repo.On("Update", mock.Anything, "prod-1", map[string]interface{}{
		"price":   9.99,
		"inStock": false,
	}).Return(&entities.Product{
		ID: "prod-1", Name: "Hammer", Category: "tools", Price: 9.99, InStock: false,
	}, nil)

	body := bytes.NewBufferString(`{"price":9.99,"inStock":false}`)
	req := httptest.NewRequest(http.MethodPut, "/products/prod-1", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestProductHandler_Update_StorageFailure(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	repo.On("Update", mock.Anything, "prod-1", mock.Anything).
		Return(nil, apperrors.NewStorageError("UpdateItem", assert.AnError))

	body := bytes.NewBufferString(`{"price":9.99}`)
	req := httptest.NewRequest(http.MethodPut, "/products/prod-1", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProductHandler_Delete(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	repo.On("Delete", mock.Anything, "prod-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/products/prod-1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	repo.AssertExpectations(t)
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	repo := new(mockProductRepo)
	router := newProductTestRouter(repo)

	repo.On("Delete", mock.Anything, "missing").
		Return(apperrors.NewNotFoundError("product", "missing"))

	req := httptest.NewRequest(http.MethodDelete, "/products/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
