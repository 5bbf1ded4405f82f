package search_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	searchsvc "github.com/angristan/spotify-wrapper/internal/app/services/search"
	handler "github.com/angristan/spotify-wrapper/internal/infra/http/handlers/search"
	"github.com/angristan/spotify-wrapper/internal/infra/http/handlers/search/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSearchHandler_SearchStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		pathType       string
		rawQuery       string
		expectedQuery  string
		expectedTypes  []string
		serviceResult  searchsvc.Result
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "invalid type",
			pathType:       "invalid",
			rawQuery:       "/artist",
			expectedQuery:  "artist",
			expectedTypes:  []string{"invalid"},
			serviceErr:     fmt.Errorf("%w: invalid", searchsvc.ErrInvalidSearchType),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid search type"}`,
		},
		{
			name:           "empty query from service",
			pathType:       "album",
			rawQuery:       "/%20",
			expectedQuery:  "%20",
			expectedTypes:  []string{"album"},
			serviceErr:     searchsvc.ErrEmptyQuery,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "query is required"}`,
		},
		{
			name:           "spotify client error",
			pathType:       "artist",
			rawQuery:       "/aespa",
			expectedQuery:  "aespa",
			expectedTypes:  []string{"artist"},
			serviceErr:     fmt.Errorf("%w: connection refused", searchsvc.ErrSpotifyClient),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error": "spotify client error"}`,
		},
		{
			name:           "unexpected error",
			pathType:       "artist",
			rawQuery:       "/ive",
			expectedQuery:  "ive",
			expectedTypes:  []string{"artist"},
			serviceErr:     assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error": "internal server error"}`,
		},
		{
			name:          "upstream status passed through",
			pathType:      "track",
			rawQuery:      "/twice",
			expectedQuery: "twice",
			expectedTypes: []string{"track"},
			serviceResult: searchsvc.Result{
				StatusCode:  http.StatusUnauthorized,
				ContentType: "application/json",
				Body:        []byte(`{"error":{"status":401,"message":"No token provided"}}`),
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":{"status":401,"message":"No token provided"}}`,
		},
		{
			name:          "several types",
			pathType:      "artist,album",
			rawQuery:      "/Audioslave",
			expectedQuery: "Audioslave",
			expectedTypes: []string{"artist", "album"},
			serviceResult: searchsvc.Result{
				StatusCode: http.StatusOK,
				Body:       []byte(`{"artists":{},"albums":{}}`),
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"artists":{},"albums":{}}`,
		},
		{
			name:          "success with slash",
			pathType:      "artist",
			rawQuery:      "/AC/DC",
			expectedQuery: "AC/DC",
			expectedTypes: []string{"artist"},
			serviceResult: searchsvc.Result{
				StatusCode:  http.StatusOK,
				ContentType: "application/json; charset=utf-8",
				Body:        []byte(`{"name":"AC/DC"}`),
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"name":"AC/DC"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			req := httptest.NewRequest(http.MethodGet, "/search/"+tt.pathType+tt.rawQuery, nil)
			ctx.Request = req
			ctx.Params = gin.Params{
				{Key: "type", Value: tt.pathType},
				{Key: "query", Value: tt.rawQuery},
			}

			mockService := &mocks.MockSearchService{}
			t.Cleanup(func() {
				mockService.AssertExpectations(t)
			})

			mockService.On("Search", mock.Anything, tt.expectedQuery, tt.expectedTypes).
				Return(tt.serviceResult, tt.serviceErr).
				Once()

			h := handler.New(otel.Tracer("test"), mockService)
			h.Search(ctx)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.JSONEq(t, tt.expectedBody, recorder.Body.String())
			assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestSearchHandler_MissingParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		pathType string
		rawQuery string
		expected string
	}{
		{"missing type", "", "/twice", "type is required"},
		{"missing query", "artist", "/", "query is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/search/", nil)
			ctx.Params = gin.Params{
				{Key: "type", Value: tt.pathType},
				{Key: "query", Value: tt.rawQuery},
			}

			mockService := &mocks.MockSearchService{}
			handler.New(otel.Tracer("test"), mockService).Search(ctx)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
			assert.Equal(t, map[string]string{"error": tt.expected}, payload)
			mockService.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
