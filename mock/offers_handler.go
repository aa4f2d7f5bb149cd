package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
)

type OffersResponse struct {
	Data         []Offer `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

type Offer struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
}

type Endpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type Price struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

var carriers = map[string]string{
	"AF": "AIR FRANCE",
	"BA": "BRITISH AIRWAYS",
	"EK": "EMIRATES",
	"LH": "LUFTHANSA",
	"FR": "RYANAIR",
}

var carrierCodes = []string{"AF", "BA", "EK", "LH", "FR"}

// FlightOffersHandler fabricates offers in the flight-offers wire shape
// for whatever route and date the query names.
func FlightOffersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeAmadeusError(w, http.StatusUnauthorized, 38190, "Invalid access token", "The access token provided in the Authorization header is invalid")
		return
	}

	q := r.URL.Query()
	origin := q.Get("originLocationCode")
	destination := q.Get("destinationLocationCode")
	date := q.Get("departureDate")
	if origin == "" || destination == "" || date == "" {
		writeAmadeusError(w, http.StatusBadRequest, 32171, "MANDATORY DATA MISSING", "Missing origin, destination or departure date")
		return
	}

	resp := OffersResponse{Data: make([]Offer, 0)}
	resp.Dictionaries.Carriers = carriers

	count := 4 + rand.Intn(5)
	for i := 0; i < count; i++ {
		code := carrierCodes[rand.Intn(len(carrierCodes))]
		departHour := 6 + rand.Intn(14)
		durationHours := 2 + rand.Intn(9)
		durationMinutes := rand.Intn(60)

		segments := []Segment{{
			Departure:   Endpoint{IataCode: origin, At: fmt.Sprintf("%sT%02d:%02d:00", date, departHour, rand.Intn(60))},
			Arrival:     Endpoint{IataCode: destination, At: fmt.Sprintf("%sT%02d:%02d:00", date, (departHour+durationHours)%24, durationMinutes)},
			CarrierCode: code,
			Number:      fmt.Sprintf("%d", 100+rand.Intn(900)),
		}}

		// Occasionally route through a hub to produce a one-stop itinerary.
		if rand.Float64() > 0.7 {
			segments[0].Arrival = Endpoint{IataCode: "DXB", At: segments[0].Arrival.At}
			segments = append(segments, Segment{
				Departure:   Endpoint{IataCode: "DXB", At: segments[0].Arrival.At},
				Arrival:     Endpoint{IataCode: destination, At: fmt.Sprintf("%sT%02d:%02d:00", date, (departHour+durationHours+2)%24, durationMinutes)},
				CarrierCode: code,
				Number:      fmt.Sprintf("%d", 100+rand.Intn(900)),
			})
		}

		resp.Data = append(resp.Data, Offer{
			ID: fmt.Sprintf("%d", i+1),
			Itineraries: []Itinerary{{
				Duration: fmt.Sprintf("PT%dH%dM", durationHours, durationMinutes),
				Segments: segments,
			}},
			Price: Price{Currency: "EUR", Total: fmt.Sprintf("%d.%02d", 50+rand.Intn(500), rand.Intn(100))},
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
