package search

import (
	"fmt"
	"math/rand"
	"strings"
)

var mockAirlines = []string{"Air France", "Emirates", "Lufthansa", "British Airways", "Ryanair"}

// generateMockOffers produces 5-9 synthetic offers for the requested route so
// the caller always has something to render without a live provider. Shapes
// and ranges are fixed; the randomness is not seeded for reproducibility.
func generateMockOffers(req SearchRequest) []FlightOffer {
	count := 5 + rand.Intn(5)
	offers := make([]FlightOffer, 0, count)

	for i := 0; i < count; i++ {
		airline := mockAirlines[rand.Intn(len(mockAirlines))]
		price := 50 + rand.Intn(500)
		startHour := 6 + rand.Intn(16)
		durationHours := 2 + rand.Intn(10)

		stops := "Direct"
		if rand.Float64() > 0.7 {
			stops = "1 Stop"
		}

		offers = append(offers, FlightOffer{
			ID:            fmt.Sprintf("%s-%d", req.Date, i),
			Airline:       airline,
			FlightNumber:  fmt.Sprintf("%s%d", strings.ToUpper(airline[:2]), 100+i),
			From:          req.From,
			To:            req.To,
			Date:          req.Date,
			DepartureTime: fmt.Sprintf("%d:00", startHour),
			ArrivalTime:   fmt.Sprintf("%d:00", (startHour+durationHours)%24),
			Duration:      fmt.Sprintf("%dh 00m", durationHours),
			Stops:         stops,
			Price:         price,
			Link:          deepLink(req.From, req.To, req.Date),
		})
	}
	return offers
}
