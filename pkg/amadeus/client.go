package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"farefinder/internal/search"
	"farefinder/pkg/logger"
)

// Client talks to the Amadeus Self-Service flight offers API. Tokens are
// fetched and refreshed through the client-credentials grant; the wrapped
// http.Client injects them on every call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Client
}

func NewClient(httpClient *http.Client, baseURL, clientID, clientSecret string, logger logger.Client) *Client {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     baseURL + "/v1/security/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)

	return &Client{
		httpClient: conf.Client(ctx),
		baseURL:    baseURL,
		logger:     logger,
	}
}

type offersResponse struct {
	Data         []search.RawOffer `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

type errorResponse struct {
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// SearchOffers queries one-way flight offers for the given route and date.
func (c *Client) SearchOffers(ctx context.Context, q search.ProviderQuery) (*search.ProviderResult, error) {
	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate)
	params.Set("adults", strconv.Itoa(q.Adults))

	c.logger.Debug("searching flight offers",
		logger.Field{Key: "origin", Value: q.Origin},
		logger.Field{Key: "destination", Value: q.Destination},
		logger.Field{Key: "date", Value: q.DepartureDate},
	)

	endpoint := fmt.Sprintf("%s/v2/shopping/flight-offers?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("failed to build offers request", logger.Field{Key: "err", Value: err})
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight offers search: %s", extractErrorDetail(resp))
	}

	var apiResp offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode offers response: %w", err)
	}

	return &search.ProviderResult{
		Offers:   apiResp.Data,
		Carriers: apiResp.Dictionaries.Carriers,
	}, nil
}

// Ping performs the startup connectivity probe: a basic city-locations
// lookup that exercises both the token flow and the API entitlement.
func (c *Client) Ping(ctx context.Context) error {
	endpoint := c.baseURL + "/v1/reference-data/locations?keyword=PAR&subType=CITY"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s", extractErrorDetail(resp))
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

// extractErrorDetail pulls the most specific error text available from an
// API error body, falling back to the HTTP status.
func extractErrorDetail(resp *http.Response) string {
	var apiErr errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && len(apiErr.Errors) > 0 {
		if apiErr.Errors[0].Detail != "" {
			return apiErr.Errors[0].Detail
		}
		if apiErr.Errors[0].Title != "" {
			return apiErr.Errors[0].Title
		}
	}
	return fmt.Sprintf("unexpected status %d", resp.StatusCode)
}
