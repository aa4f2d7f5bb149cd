package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rawOfferFixture() RawOffer {
	return RawOffer{
		ID: "42",
		Itineraries: []RawItinerary{{
			Duration: "PT5H30M",
			Segments: []RawSegment{{
				Departure:   RawEndpoint{IataCode: "CDG", At: "2025-06-01T08:15:00"},
				Arrival:     RawEndpoint{IataCode: "LHR", At: "2025-06-01T13:45:00"},
				CarrierCode: "AF",
				Number:      "1234",
			}},
		}},
		Price: RawPrice{Total: "123.45"},
	}
}

func TestNormalizeOffer_SingleSegment(t *testing.T) {
	carriers := map[string]string{"AF": "AIR FRANCE"}
	req := SearchRequest{From: "par", To: "lon", Date: "2025-06-01"}

	offer, ok := normalizeOffer(rawOfferFixture(), carriers, req)

	assert.True(t, ok)
	assert.Equal(t, "42", offer.ID)
	assert.Equal(t, "AIR FRANCE", offer.Airline)
	assert.Equal(t, "AF1234", offer.FlightNumber)
	assert.Equal(t, "CDG", offer.From)
	assert.Equal(t, "LHR", offer.To)
	assert.Equal(t, "2025-06-01", offer.Date)
	assert.Equal(t, "08:15", offer.DepartureTime)
	assert.Equal(t, "13:45", offer.ArrivalTime)
	assert.Equal(t, "5h 30m", offer.Duration)
	assert.Equal(t, "Direct", offer.Stops)
	assert.Equal(t, 123, offer.Price)
	assert.Equal(t, "https://www.google.com/travel/flights?q=one+way+flights+from+par+to+lon+on+2025-06-01", offer.Link)
}

func TestNormalizeOffer_MultiSegmentCollapsesToEndpoints(t *testing.T) {
	raw := rawOfferFixture()
	raw.Itineraries[0].Segments = []RawSegment{
		{
			Departure:   RawEndpoint{IataCode: "CDG", At: "2025-06-01T08:15:00"},
			Arrival:     RawEndpoint{IataCode: "AMS", At: "2025-06-01T09:40:00"},
			CarrierCode: "KL",
			Number:      "2010",
		},
		{
			Departure:   RawEndpoint{IataCode: "AMS", At: "2025-06-01T11:05:00"},
			Arrival:     RawEndpoint{IataCode: "LHR", At: "2025-06-01T11:35:00"},
			CarrierCode: "KL",
			Number:      "1007",
		},
		{
			Departure:   RawEndpoint{IataCode: "LHR", At: "2025-06-01T13:20:00"},
			Arrival:     RawEndpoint{IataCode: "EDI", At: "2025-06-01T14:50:00"},
			CarrierCode: "BA",
			Number:      "1442",
		},
	}

	offer, ok := normalizeOffer(raw, nil, SearchRequest{From: "PAR", To: "EDI", Date: "2025-06-01"})

	assert.True(t, ok)
	// Layover segments only contribute to the stop count.
	assert.Equal(t, "CDG", offer.From)
	assert.Equal(t, "EDI", offer.To)
	assert.Equal(t, "08:15", offer.DepartureTime)
	assert.Equal(t, "14:50", offer.ArrivalTime)
	assert.Equal(t, "2 Stop", offer.Stops)
	assert.Equal(t, "KL2010", offer.FlightNumber)
}

func TestNormalizeOffer_CarrierCodeFallback(t *testing.T) {
	offer, ok := normalizeOffer(rawOfferFixture(), map[string]string{}, SearchRequest{})

	assert.True(t, ok)
	assert.Equal(t, "AF", offer.Airline)
}

func TestNormalizeOffer_Unmappable(t *testing.T) {
	t.Run("no itineraries", func(t *testing.T) {
		raw := rawOfferFixture()
		raw.Itineraries = nil
		_, ok := normalizeOffer(raw, nil, SearchRequest{})
		assert.False(t, ok)
	})

	t.Run("no segments", func(t *testing.T) {
		raw := rawOfferFixture()
		raw.Itineraries[0].Segments = nil
		_, ok := normalizeOffer(raw, nil, SearchRequest{})
		assert.False(t, ok)
	})

	t.Run("malformed departure timestamp", func(t *testing.T) {
		raw := rawOfferFixture()
		raw.Itineraries[0].Segments[0].Departure.At = "2025-06-01"
		_, ok := normalizeOffer(raw, nil, SearchRequest{})
		assert.False(t, ok)
	})

	t.Run("unparseable price", func(t *testing.T) {
		raw := rawOfferFixture()
		raw.Price.Total = "not-a-price"
		_, ok := normalizeOffer(raw, nil, SearchRequest{})
		assert.False(t, ok)
	})
}

func TestNormalizeOffer_PriceRounding(t *testing.T) {
	raw := rawOfferFixture()
	raw.Price.Total = "99.50"

	offer, ok := normalizeOffer(raw, nil, SearchRequest{})

	assert.True(t, ok)
	assert.Equal(t, 100, offer.Price)
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PT5H30M", "5h 30m"},
		{"PT12H5M", "12h 5m"},
		{"PT45M", "45m"},
		{"", "N/A"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatDuration(tc.in), "formatDuration(%q)", tc.in)
	}
}
