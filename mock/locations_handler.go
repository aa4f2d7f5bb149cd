package main

import (
	"encoding/json"
	"net/http"
	"strings"
)

type LocationsResponse struct {
	Data []Location `json:"data"`
}

type Location struct {
	Type     string `json:"type"`
	SubType  string `json:"subType"`
	Name     string `json:"name"`
	IataCode string `json:"iataCode"`
}

var locations = []Location{
	{Type: "location", SubType: "CITY", Name: "PARIS", IataCode: "PAR"},
	{Type: "location", SubType: "CITY", Name: "LONDON", IataCode: "LON"},
	{Type: "location", SubType: "CITY", Name: "NEW YORK", IataCode: "NYC"},
	{Type: "location", SubType: "AIRPORT", Name: "CHARLES DE GAULLE", IataCode: "CDG"},
	{Type: "location", SubType: "AIRPORT", Name: "HEATHROW", IataCode: "LHR"},
}

// LocationsHandler answers keyword lookups; the probe endpoint used for
// connectivity checks hits this with keyword=PAR.
func LocationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeAmadeusError(w, http.StatusUnauthorized, 38190, "Invalid access token", "The access token provided in the Authorization header is invalid")
		return
	}

	q := r.URL.Query()
	keyword := strings.ToUpper(q.Get("keyword"))
	subType := strings.ToUpper(q.Get("subType"))

	matches := make([]Location, 0)
	for _, loc := range locations {
		if keyword != "" && !strings.HasPrefix(loc.Name, keyword) && !strings.HasPrefix(loc.IataCode, keyword) {
			continue
		}
		if subType != "" && loc.SubType != subType {
			continue
		}
		matches = append(matches, loc)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LocationsResponse{Data: matches})
}
