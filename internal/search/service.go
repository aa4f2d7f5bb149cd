package search

import (
	"context"
	"strings"

	"farefinder/pkg/logger"
)

// resultKind tags how a search request was resolved. Keeping the routing as
// an explicit tagged outcome makes the invariant auditable: mock data never
// substitutes for a live query that returned nothing or failed.
type resultKind int

const (
	liveResult resultKind = iota
	mockResult
	emptyResult
)

type Service struct {
	provider ProviderClient // nil when no live provider is configured
	logger   logger.Client
}

func NewService(provider ProviderClient, logger logger.Client) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// Search runs one flight search and always resolves to a (possibly empty)
// offer list. Provider failures are logged for diagnostics only; the caller
// cannot distinguish "no flights" from "provider errored".
func (s *Service) Search(ctx context.Context, req SearchRequest) []FlightOffer {
	kind, result := s.resolve(ctx, req)

	switch kind {
	case liveResult:
		offers := make([]FlightOffer, 0, len(result.Offers))
		for _, raw := range result.Offers {
			offer, ok := normalizeOffer(raw, result.Carriers, req)
			if !ok {
				s.logger.Warn("dropping unmappable offer", logger.Field{Key: "offer_id", Value: raw.ID})
				continue
			}
			offers = append(offers, offer)
		}
		return offers

	case emptyResult:
		return []FlightOffer{}

	default:
		s.logger.Info("generating mock offers",
			logger.Field{Key: "from", Value: req.From},
			logger.Field{Key: "to", Value: req.To},
		)
		return generateMockOffers(req)
	}
}

// resolve decides the routing for one request: live provider data, mock
// fallback, or an intentionally empty result.
func (s *Service) resolve(ctx context.Context, req SearchRequest) (resultKind, *ProviderResult) {
	if s.provider == nil || !IsIATA(req.From) || !IsIATA(req.To) {
		return mockResult, nil
	}

	result, err := s.provider.SearchOffers(ctx, ProviderQuery{
		Origin:        strings.ToUpper(req.From),
		Destination:   strings.ToUpper(req.To),
		DepartureDate: req.Date,
		Adults:        1,
	})
	if err != nil {
		s.logger.Error("provider search failed",
			logger.Field{Key: "from", Value: req.From},
			logger.Field{Key: "to", Value: req.To},
			logger.Field{Key: "err", Value: err},
		)
		return emptyResult, nil
	}
	if len(result.Offers) == 0 {
		s.logger.Info("provider returned no offers, skipping mock fallback")
		return emptyResult, nil
	}
	return liveResult, result
}
