package main

import (
	"encoding/json"
	"net/http"
)

type TokenResponse struct {
	Type        string `json:"type"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	State       string `json:"state"`
}

type AmadeusError struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// TokenHandler issues a token for any non-empty client credential pair,
// mirroring the client_credentials grant of the real API.
func TokenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
		writeAmadeusError(w, http.StatusUnauthorized, 38187, "Invalid parameters", "Client credentials are invalid")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TokenResponse{
		Type:        "amadeusOAuth2Token",
		AccessToken: "fake-access-token",
		TokenType:   "Bearer",
		ExpiresIn:   1799,
		State:       "approved",
	})
}

func writeAmadeusError(w http.ResponseWriter, status, code int, title, detail string) {
	var resp AmadeusError
	resp.Errors = append(resp.Errors, struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}{Status: status, Code: code, Title: title, Detail: detail})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
