package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-notify-relay/internal/domain"
)

// Resolver resolves coordinates to a display-ready address. Failures never
// escape as errors; they fold into the sentinel address values.
type Resolver interface {
	Resolve(ctx context.Context, lat, lon float64) domain.Address
}

type client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a Resolver backed by the GSI reverse-geocoder service.
func NewClient(httpClient *http.Client, baseURL string) Resolver {
	return &client{httpClient: httpClient, baseURL: baseURL}
}

// lookupResponse mirrors the LonLatToAddress response. Lv01Nm is the named
// location; the rest of the payload is ignored.
type lookupResponse struct {
	Results struct {
		MuniCd string `json:"muniCd"`
		Lv01Nm string `json:"lv01Nm"`
	} `json:"results"`
}

func (c *client) Resolve(ctx context.Context, lat, lon float64) domain.Address {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	endpoint := fmt.Sprintf("%s/reverse-geocoder/LonLatToAddress?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("address lookup error: %v", err)
		return domain.FailedAddress()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("address lookup error: %v", err)
		return domain.FailedAddress()
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("address lookup error: status %d", resp.StatusCode)
		return domain.FailedAddress()
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("address lookup error: %v", err)
		return domain.FailedAddress()
	}

	if body.Results.Lv01Nm == "" {
		return domain.UnknownAddress()
	}
	return domain.KnownAddress(body.Results.Lv01Nm)
}
