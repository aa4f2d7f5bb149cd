package search

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMockOffers_Shape(t *testing.T) {
	req := SearchRequest{From: "par", To: "lon", Date: "2025-06-01"}

	generated := 0
	for generated < 1000 {
		offers := generateMockOffers(req)
		assert.GreaterOrEqual(t, len(offers), 5)
		assert.LessOrEqual(t, len(offers), 9)

		for i, offer := range offers {
			assert.Equal(t, "par", offer.From)
			assert.Equal(t, "lon", offer.To)
			assert.Equal(t, "2025-06-01", offer.Date)
			assert.Equal(t, fmt.Sprintf("2025-06-01-%d", i), offer.ID)

			assert.GreaterOrEqual(t, offer.Price, 50)
			assert.LessOrEqual(t, offer.Price, 549)

			hourText, ok := strings.CutSuffix(offer.DepartureTime, ":00")
			assert.True(t, ok, "departure time %q should end in :00", offer.DepartureTime)
			hour, err := strconv.Atoi(hourText)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, hour, 6)
			assert.LessOrEqual(t, hour, 21)

			assert.Contains(t, []string{"Direct", "1 Stop"}, offer.Stops)
			assert.Regexp(t, `^\d+h 00m$`, offer.Duration)
			assert.Regexp(t, `^[A-Z]{2}\d{3}$`, offer.FlightNumber)
			assert.Contains(t, mockAirlines, offer.Airline)
			assert.NotEmpty(t, offer.Link)
		}
		generated += len(offers)
	}
}

func TestGenerateMockOffers_ArrivalWrapsMidnight(t *testing.T) {
	req := SearchRequest{From: "syd", To: "akl", Date: "2025-07-10"}

	for i := 0; i < 200; i++ {
		for _, offer := range generateMockOffers(req) {
			hourText, _ := strings.CutSuffix(offer.ArrivalTime, ":00")
			hour, err := strconv.Atoi(hourText)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, hour, 0)
			assert.Less(t, hour, 24)
		}
	}
}
