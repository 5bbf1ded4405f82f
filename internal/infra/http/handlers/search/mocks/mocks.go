package mocks

import (
	"context"

	searchsvc "github.com/angristan/spotify-wrapper/internal/app/services/search"
	"github.com/stretchr/testify/mock"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query string, types []string) (searchsvc.Result, error) {
	args := m.Called(ctx, query, types)

	result, _ := args.Get(0).(searchsvc.Result)
	return result, args.Error(1)
}
