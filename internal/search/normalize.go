package search

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// normalizeOffer maps one raw provider offer into the canonical FlightOffer.
// A multi-segment itinerary collapses to its endpoint times; layover segments
// only contribute to the stop count. Returns ok=false when the offer cannot
// be mapped completely.
func normalizeOffer(raw RawOffer, carriers map[string]string, req SearchRequest) (FlightOffer, bool) {
	if len(raw.Itineraries) == 0 {
		return FlightOffer{}, false
	}
	itin := raw.Itineraries[0]
	if len(itin.Segments) == 0 {
		return FlightOffer{}, false
	}

	first := itin.Segments[0]
	last := itin.Segments[len(itin.Segments)-1]

	depDate, depTime, ok := splitTimestamp(first.Departure.At)
	if !ok {
		return FlightOffer{}, false
	}
	_, arrTime, ok := splitTimestamp(last.Arrival.At)
	if !ok {
		return FlightOffer{}, false
	}

	total, err := strconv.ParseFloat(raw.Price.Total, 64)
	if err != nil {
		return FlightOffer{}, false
	}

	airline := carriers[first.CarrierCode]
	if airline == "" {
		airline = first.CarrierCode
	}

	stops := "Direct"
	if n := len(itin.Segments); n > 1 {
		stops = fmt.Sprintf("%d Stop", n-1)
	}

	return FlightOffer{
		ID:            raw.ID,
		Airline:       airline,
		FlightNumber:  first.CarrierCode + first.Number,
		From:          first.Departure.IataCode,
		To:            last.Arrival.IataCode,
		Date:          depDate,
		DepartureTime: depTime,
		ArrivalTime:   arrTime,
		Duration:      formatDuration(itin.Duration),
		Stops:         stops,
		Price:         int(math.Round(total)),
		Link:          deepLink(req.From, req.To, req.Date),
	}, true
}

// formatDuration turns an ISO-8601 duration like "PT5H30M" into "5h 30m".
// An absent duration becomes the literal "N/A".
func formatDuration(iso string) string {
	if iso == "" {
		return "N/A"
	}
	d := strings.ToLower(strings.TrimPrefix(iso, "PT"))
	return strings.Replace(d, "h", "h ", 1)
}

// splitTimestamp splits an ISO-8601 "date T time" string into its calendar
// date and HH:MM clock parts, truncating seconds.
func splitTimestamp(at string) (string, string, bool) {
	date, clock, found := strings.Cut(at, "T")
	if !found || len(clock) < 5 {
		return "", "", false
	}
	return date, clock[:5], true
}

// deepLink builds the human-followable booking search URL. The raw request
// values are substituted as-is; the link is never parsed back.
func deepLink(from, to, date string) string {
	return fmt.Sprintf("https://www.google.com/travel/flights?q=one+way+flights+from+%s+to+%s+on+%s", from, to, date)
}
