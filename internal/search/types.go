package search

import "context"

// SearchRequest is one inbound flight search. It is ephemeral per call.
type SearchRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

// FlightOffer is the canonical flight shape returned to callers. Every field
// is populated in any returned offer; offers that cannot be fully mapped are
// dropped, never returned partially filled.
type FlightOffer struct {
	ID            string `json:"id"`
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flightNumber"`
	From          string `json:"from"`
	To            string `json:"to"`
	Date          string `json:"date"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      string `json:"duration"`
	Stops         string `json:"stops"`
	Price         int    `json:"price"`
	Link          string `json:"link"`
}

// RawOffer is one provider flight offer as it arrives on the wire.
// Only the first itinerary is consulted; return legs are discarded.
type RawOffer struct {
	ID          string         `json:"id"`
	Itineraries []RawItinerary `json:"itineraries"`
	Price       RawPrice       `json:"price"`
}

type RawItinerary struct {
	Duration string       `json:"duration"`
	Segments []RawSegment `json:"segments"`
}

type RawSegment struct {
	Departure   RawEndpoint `json:"departure"`
	Arrival     RawEndpoint `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
}

type RawEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"` // ISO-8601 local "date T time", no offset
}

type RawPrice struct {
	Total string `json:"total"`
}

// ProviderQuery is the outbound request to the live flight-data provider.
type ProviderQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	Adults        int
}

// ProviderResult carries raw offers plus the carrier-code dictionary
// (2-letter code to display name) shipped alongside them.
type ProviderResult struct {
	Offers   []RawOffer
	Carriers map[string]string
}

// ProviderClient is the capability interface for the live provider.
type ProviderClient interface {
	SearchOffers(ctx context.Context, q ProviderQuery) (*ProviderResult, error)
}
