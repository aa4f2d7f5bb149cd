package favorite

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"farefinder/internal/search"
	"farefinder/pkg/logger"
)

// MockFavoriteStore is a mock implementation of FavoriteStore
type MockFavoriteStore struct {
	mock.Mock
}

func (m *MockFavoriteStore) Insert(ctx context.Context, id, userID int64, flightData string) error {
	args := m.Called(ctx, id, userID, flightData)
	return args.Error(0)
}

func (m *MockFavoriteStore) Delete(ctx context.Context, id, userID int64) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavoriteStore) ListByUser(ctx context.Context, userID int64) ([]Record, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

// sequenceIDs is a deterministic Generator for tests
type sequenceIDs struct {
	next int64
}

func (s *sequenceIDs) GenerateID() int64 {
	s.next++
	return s.next
}

func testLogger() logger.Client {
	return logger.NewWithWriter("production", io.Discard)
}

func offerFixture() search.FlightOffer {
	return search.FlightOffer{
		ID:            "42",
		Airline:       "AIR FRANCE",
		FlightNumber:  "AF1234",
		From:          "CDG",
		To:            "LHR",
		Date:          "2025-06-01",
		DepartureTime: "08:15",
		ArrivalTime:   "13:45",
		Duration:      "5h 30m",
		Stops:         "Direct",
		Price:         123,
		Link:          "https://www.google.com/travel/flights?q=one+way+flights+from+par+to+lon+on+2025-06-01",
	}
}

func TestSaveFavoriteThenGet(t *testing.T) {
	offer := offerFixture()
	blob, err := json.Marshal(offer)
	assert.NoError(t, err)

	store := new(MockFavoriteStore)
	store.On("Insert", mock.Anything, int64(1), int64(1), string(blob)).Return(nil)
	store.On("ListByUser", mock.Anything, int64(1)).Return([]Record{{ID: 1, FlightData: string(blob)}}, nil)
	svc := NewService(store, &sequenceIDs{}, testLogger())

	saved := svc.SaveFavorite(context.Background(), 1, offer)
	assert.True(t, saved.Success)
	assert.Empty(t, saved.Error)

	favorites := svc.GetFavorites(context.Background(), 1)
	assert.Len(t, favorites, 1)
	assert.Equal(t, offer, favorites[0].FlightOffer)
	assert.Equal(t, int64(1), favorites[0].DBID)
	store.AssertExpectations(t)
}

func TestSaveFavorite_StorageError(t *testing.T) {
	store := new(MockFavoriteStore)
	store.On("Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("disk full"))
	svc := NewService(store, &sequenceIDs{}, testLogger())

	result := svc.SaveFavorite(context.Background(), 1, offerFixture())

	assert.False(t, result.Success)
	assert.Equal(t, "disk full", result.Error)
}

func TestRemoveFavorite(t *testing.T) {
	t.Run("existing pair", func(t *testing.T) {
		store := new(MockFavoriteStore)
		store.On("Delete", mock.Anything, int64(5), int64(1)).Return(int64(1), nil)
		svc := NewService(store, &sequenceIDs{}, testLogger())

		result := svc.RemoveFavorite(context.Background(), 1, 5)

		assert.True(t, result.Success)
	})

	t.Run("missing pair is a no-op", func(t *testing.T) {
		blob, _ := json.Marshal(offerFixture())
		store := new(MockFavoriteStore)
		store.On("Delete", mock.Anything, int64(999), int64(1)).Return(int64(0), nil)
		store.On("ListByUser", mock.Anything, int64(1)).Return([]Record{{ID: 1, FlightData: string(blob)}}, nil)
		svc := NewService(store, &sequenceIDs{}, testLogger())

		result := svc.RemoveFavorite(context.Background(), 1, 999)

		assert.False(t, result.Success)
		// The stored favorites are untouched.
		assert.Len(t, svc.GetFavorites(context.Background(), 1), 1)
	})
}

func TestGetFavorites_FailuresResolveToEmptyList(t *testing.T) {
	t.Run("storage error", func(t *testing.T) {
		store := new(MockFavoriteStore)
		store.On("ListByUser", mock.Anything, int64(1)).Return(nil, errors.New("table missing"))
		svc := NewService(store, &sequenceIDs{}, testLogger())

		favorites := svc.GetFavorites(context.Background(), 1)

		assert.NotNil(t, favorites)
		assert.Empty(t, favorites)
	})

	t.Run("corrupt blob", func(t *testing.T) {
		store := new(MockFavoriteStore)
		store.On("ListByUser", mock.Anything, int64(1)).Return([]Record{{ID: 1, FlightData: "{not json"}}, nil)
		svc := NewService(store, &sequenceIDs{}, testLogger())

		favorites := svc.GetFavorites(context.Background(), 1)

		assert.Empty(t, favorites)
	})
}
