package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
	"github.com/phrazzld/kundli-api/internal/ephemeris"
)

// MockProvider mocks the ephemeris.Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Longitude(ctx context.Context, at ephemeris.Moment, b chart.Body) (float64, error) {
	args := m.Called(ctx, at, b)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockProvider) AscendantAndCusps(
	ctx context.Context,
	at ephemeris.Moment,
	lat, lon float64,
	hs ephemeris.HouseSystem,
) (float64, [12]float64, error) {
	args := m.Called(ctx, at, lat, lon, hs)
	return args.Get(0).(float64), args.Get(1).([12]float64), args.Error(2)
}
