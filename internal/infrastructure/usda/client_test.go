package usda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nutriscore/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.Equal(t, domain.TierAuthoritative, client.Tier())
}

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/foods/search", r.URL.Path)
		assert.Equal(t, "banana", r.URL.Query().Get("query"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))

		response := searchResponse{
			Foods: []fdcFood{
				{
					FdcID:       173944,
					Description: "Bananas, raw",
					DataType:    "Foundation",
					Nutrients: []fdcNutrient{
						{NutrientID: nutrientIDEnergy, Value: 89},
						{NutrientID: nutrientIDProtein, Value: 1.1},
						{NutrientID: nutrientIDCarbohydrate, Value: 22.8},
						{NutrientID: nutrientIDTotalFat, Value: 0.3},
						{NutrientID: nutrientIDFiber, Value: 2.6},
						{NutrientID: nutrientIDVitaminC, Value: 8.7},
					},
				},
			},
			TotalHits: 1,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)

	records, err := client.Search(context.Background(), "banana")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Bananas, raw", records[0].Name)
	assert.Equal(t, domain.TierAuthoritative, records[0].Source)
	assert.Equal(t, 0.95, records[0].Confidence)
	assert.Equal(t, 89.0, records[0].Facts.Calories)
	assert.Equal(t, 2.6, records[0].Facts.Fiber)
	assert.Equal(t, 8.7, records[0].Facts.VitaminC)
}

func TestSearch_NotFoundMeansNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)

	records, err := client.Search(context.Background(), "xyzzynotfood")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSearch_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchResponse{})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)

	records, err := client.Search(context.Background(), "nothing")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSearch_ServerErrorSurfacesAsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)

	_, err := client.Search(context.Background(), "banana")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestSearch_RetriesTransientFailures(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchResponse{
			Foods: []fdcFood{{FdcID: 1, Description: "Rice, white, cooked", DataType: "Survey (FNDDS)"}},
		})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)

	records, err := client.Search(context.Background(), "rice")

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	require.Len(t, records, 1)
	assert.Equal(t, 0.90, records[0].Confidence)
}
