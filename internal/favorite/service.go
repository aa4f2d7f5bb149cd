package favorite

import (
	"context"
	"encoding/json"

	"farefinder/internal/search"
	"farefinder/pkg/idgen"
	"farefinder/pkg/logger"
)

// FavoriteStore is the persistence capability the favorites service depends on.
type FavoriteStore interface {
	Insert(ctx context.Context, id, userID int64, flightData string) error
	Delete(ctx context.Context, id, userID int64) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]Record, error)
}

// SavedOffer is a favorite as returned to the caller: the original offer
// fields plus the storage identifier needed for removal.
type SavedOffer struct {
	search.FlightOffer
	DBID int64 `json:"dbId"`
}

type SaveResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type RemoveResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type Service struct {
	favorites FavoriteStore
	ids       idgen.Generator
	logger    logger.Client
}

func NewService(favorites FavoriteStore, ids idgen.Generator, logger logger.Client) *Service {
	return &Service{
		favorites: favorites,
		ids:       ids,
		logger:    logger,
	}
}

// SaveFavorite stores the offer as an opaque serialized blob. Duplicate
// favorites for the same offer are allowed.
func (s *Service) SaveFavorite(ctx context.Context, userID int64, offer search.FlightOffer) SaveResult {
	data, err := json.Marshal(offer)
	if err != nil {
		return SaveResult{Success: false, Error: err.Error()}
	}

	if err := s.favorites.Insert(ctx, s.ids.GenerateID(), userID, string(data)); err != nil {
		s.logger.Warn("failed to save favorite",
			logger.Field{Key: "user_id", Value: userID},
			logger.Field{Key: "err", Value: err},
		)
		return SaveResult{Success: false, Error: err.Error()}
	}
	return SaveResult{Success: true}
}

// RemoveFavorite reports success only when the (favorite, user) pair matched
// an existing row.
func (s *Service) RemoveFavorite(ctx context.Context, userID, favoriteID int64) RemoveResult {
	affected, err := s.favorites.Delete(ctx, favoriteID, userID)
	if err != nil {
		s.logger.Warn("failed to remove favorite",
			logger.Field{Key: "user_id", Value: userID},
			logger.Field{Key: "err", Value: err},
		)
		return RemoveResult{Success: false, Error: err.Error()}
	}
	return RemoveResult{Success: affected > 0}
}

// GetFavorites returns the user's saved offers. Any storage or decode
// failure resolves to an empty list, never an error.
func (s *Service) GetFavorites(ctx context.Context, userID int64) []SavedOffer {
	records, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list favorites",
			logger.Field{Key: "user_id", Value: userID},
			logger.Field{Key: "err", Value: err},
		)
		return []SavedOffer{}
	}

	offers := make([]SavedOffer, 0, len(records))
	for _, rec := range records {
		var offer search.FlightOffer
		if err := json.Unmarshal([]byte(rec.FlightData), &offer); err != nil {
			s.logger.Error("failed to decode stored favorite",
				logger.Field{Key: "favorite_id", Value: rec.ID},
				logger.Field{Key: "err", Value: err},
			)
			return []SavedOffer{}
		}
		offers = append(offers, SavedOffer{FlightOffer: offer, DBID: rec.ID})
	}
	return offers
}
