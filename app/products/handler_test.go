package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/clothify/catalog-admin/models"
	"github.com/clothify/catalog-admin/store"
)

// --- Mock Store ---

type MockStore struct {
	Products   []models.Product
	Categories []models.Category
	Err        error

	// Fields to capture call arguments
	lastCreated   *models.Product
	lastUpdatedID int
	lastUpdated   *models.Product
}

func (m *MockStore) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Products, nil
}

func (m *MockStore) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	m.lastCreated = &p
	if m.Err != nil {
		return nil, m.Err
	}
	created := p
	created.ID = 100
	return &created, nil
}

func (m *MockStore) UpdateProduct(ctx context.Context, id int, p models.Product) (*models.Product, error) {
	m.lastUpdatedID = id
	m.lastUpdated = &p
	if m.Err != nil {
		return nil, m.Err
	}
	updated := p
	return &updated, nil
}

func (m *MockStore) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

// --- Mock Notifier ---

type MockNotifier struct {
	Successes []string
	Errors    []string
	Warnings  []string
}

func (n *MockNotifier) Success(msg string) { n.Successes = append(n.Successes, msg) }
func (n *MockNotifier) Error(msg string)   { n.Errors = append(n.Errors, msg) }
func (n *MockNotifier) Warning(msg string) { n.Warnings = append(n.Warnings, msg) }

// --- Helpers ---

func seededStore() *MockStore {
	return &MockStore{
		Products: []models.Product{
			{
				ID:          7,
				Code:        "SP001",
				Name:        "Linen Shirt",
				ImportDate:  models.NewDate(2024, 3, 12),
				Quantity:    40,
				CategoryID:  1,
				Price:       decimal.NewFromFloat(24.90),
				Description: "Light summer shirt",
			},
			{ID: 8, Code: "SP002", Name: "Denim Jacket", ImportDate: models.NewDate(2024, 5, 5), Quantity: 12, CategoryID: 3},
		},
		Categories: []models.Category{
			{ID: 1, Name: "Shirts"},
			{ID: 3, Name: "Jackets"},
		},
	}
}

// --- Tests: GET /products/{id} ---

func TestHandleGetProduct(t *testing.T) {
	testCases := []struct {
		name               string
		productID          string
		mockStoreSetup     func() *MockStore
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:               "Success with resolved category name",
			productID:          "7",
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp DetailResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 7, resp.ID)
				assert.Equal(t, "SP001", resp.Code)
				assert.Equal(t, "12/03/2024", resp.ImportDate)
				assert.Equal(t, "Shirts", resp.Category)
				assert.Equal(t, 24.90, resp.Price)
				assert.Equal(t, "Light summer shirt", resp.Description)
			},
		},
		{
			name:               "Product not found",
			productID:          "999",
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusNotFound,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "product not found", errResp["error"])
			},
		},
		{
			name:               "Non-numeric id",
			productID:          "abc",
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:      "Store failure",
			productID: "7",
			mockStoreSetup: func() *MockStore {
				return &MockStore{Err: errors.New("connection refused")}
			},
			expectedStatusCode: http.StatusBadGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockStore := tc.mockStoreSetup()
			handler := NewProductHandler(mockStore, &MockNotifier{})
			req := httptest.NewRequest("GET", "/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetProduct(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

// --- Tests: POST /products ---

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		mockStoreSetup     func() *MockStore
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkStore         func(t *testing.T, mockStore *MockStore)
		checkNotifier      func(t *testing.T, notifier *MockNotifier)
	}{
		{
			name:               "Success normalizes the draft before the store call",
			requestBody:        `{"code":"SP010","name":"Wool Scarf","importDate":"2024-01-15","quantity":"7","categoryId":"2","price":"12.50"}`,
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var created models.Product
				err := json.NewDecoder(rec.Body).Decode(&created)
				assert.NoError(t, err)
				assert.Equal(t, 100, created.ID, "store assigns the id")
			},
			checkStore: func(t *testing.T, mockStore *MockStore) {
				assert.NotNil(t, mockStore.lastCreated)
				assert.Equal(t, 7, mockStore.lastCreated.Quantity)
				assert.Equal(t, 2, mockStore.lastCreated.CategoryID)
				assert.Equal(t, "2024-01-15", mockStore.lastCreated.ImportDate.String())
			},
			checkNotifier: func(t *testing.T, notifier *MockNotifier) {
				assert.Len(t, notifier.Successes, 1)
			},
		},
		{
			name:               "Invalid JSON body",
			requestBody:        `{invalid json`,
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusBadRequest,
			checkStore: func(t *testing.T, mockStore *MockStore) {
				assert.Nil(t, mockStore.lastCreated)
			},
		},
		{
			name:               "Missing required field blocks before field validation",
			requestBody:        `{"code":"SP010","name":"Wool Scarf","importDate":"2024-01-15","quantity":"0"}`,
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "please fill in all fields", errResp["error"])
			},
			checkNotifier: func(t *testing.T, notifier *MockNotifier) {
				assert.Len(t, notifier.Warnings, 1, "incomplete drafts warn, not error")
				assert.Empty(t, notifier.Errors)
			},
		},
		{
			name:               "Duplicate code answers with field errors",
			requestBody:        `{"code":"sp001","name":"Linen Shirt Copy","importDate":"2024-01-15","quantity":"7","categoryId":"1"}`,
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp struct {
					Error  string            `json:"error"`
					Fields map[string]string `json:"fields"`
				}
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "validation failed", errResp.Error)
				assert.Contains(t, errResp.Fields, "code")
			},
			checkStore: func(t *testing.T, mockStore *MockStore) {
				assert.Nil(t, mockStore.lastCreated, "invalid drafts never reach the store")
			},
		},
		{
			name:        "Store failure on create",
			requestBody: `{"code":"SP010","name":"Wool Scarf","importDate":"2024-01-15","quantity":"7","categoryId":"2"}`,
			mockStoreSetup: func() *MockStore {
				return &MockStore{Err: errors.New("connection refused")}
			},
			expectedStatusCode: http.StatusBadGateway,
			checkNotifier: func(t *testing.T, notifier *MockNotifier) {
				assert.Len(t, notifier.Errors, 1)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockStore := tc.mockStoreSetup()
			notifier := &MockNotifier{}
			handler := NewProductHandler(mockStore, notifier)
			req := httptest.NewRequest("POST", "/products", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			// Act
			handler.HandleCreate(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkStore != nil {
				tc.checkStore(t, mockStore)
			}
			if tc.checkNotifier != nil {
				tc.checkNotifier(t, notifier)
			}
		})
	}
}

// --- Tests: PUT /products/{id} ---

func TestHandleUpdate(t *testing.T) {
	testCases := []struct {
		name               string
		productID          string
		requestBody        string
		mockStoreSetup     func() *MockStore
		expectedStatusCode int
		checkStore         func(t *testing.T, mockStore *MockStore)
	}{
		{
			name:               "Re-saving a product keeps its own code",
			productID:          "7",
			requestBody:        `{"code":"sp001","name":"Linen Shirt","importDate":"2024-03-12","quantity":"45","categoryId":"1"}`,
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusOK,
			checkStore: func(t *testing.T, mockStore *MockStore) {
				assert.Equal(t, 7, mockStore.lastUpdatedID)
				assert.Equal(t, 7, mockStore.lastUpdated.ID, "id is immutable and set from the path")
				assert.Equal(t, 45, mockStore.lastUpdated.Quantity)
			},
		},
		{
			name:               "Taking another product's code is rejected",
			productID:          "7",
			requestBody:        `{"code":"SP002","name":"Linen Shirt","importDate":"2024-03-12","quantity":"45","categoryId":"1"}`,
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusUnprocessableEntity,
			checkStore: func(t *testing.T, mockStore *MockStore) {
				assert.Nil(t, mockStore.lastUpdated)
			},
		},
		{
			name:               "Unknown product id",
			productID:          "999",
			requestBody:        `{"code":"SP010","name":"Wool Scarf","importDate":"2024-01-15","quantity":"7","categoryId":"2"}`,
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusNotFound,
			checkStore: func(t *testing.T, mockStore *MockStore) {
				assert.Nil(t, mockStore.lastUpdated)
			},
		},
		{
			name:               "Incomplete draft is gated",
			productID:          "7",
			requestBody:        `{"code":"SP001"}`,
			mockStoreSetup:     seededStore,
			expectedStatusCode: http.StatusBadRequest,
			checkStore: func(t *testing.T, mockStore *MockStore) {
				assert.Nil(t, mockStore.lastUpdated)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockStore := tc.mockStoreSetup()
			handler := NewProductHandler(mockStore, &MockNotifier{})
			req := httptest.NewRequest("PUT", "/products/"+tc.productID, strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("id", tc.productID)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleUpdate(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkStore != nil {
				tc.checkStore(t, mockStore)
			}
		})
	}
}
