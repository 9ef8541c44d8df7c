package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StylistClient handles communication with the style recommendation service
type StylistClient struct {
	baseURL    string
	httpClient *http.Client
}

// ShoeRecommendation is the recommendation returned for an outfit photo
type ShoeRecommendation struct {
	ShoeDescription string `json:"shoeDescription"`
	MatchReason     string `json:"matchReason"`
}

type recommendRequest struct {
	PhotoDataURI string `json:"photoDataUri"`
}

type recommendResponse struct {
	Success bool                `json:"success"`
	Data    *ShoeRecommendation `json:"data,omitempty"`
	Message *string             `json:"message,omitempty"`
}

// NewStylistClient creates a new stylist client
func NewStylistClient(baseURL string) *StylistClient {
	return &StylistClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Recommend submits the outfit photo and returns the matching shoe
// recommendation. One round trip, no retry; the caller surfaces failures as
// a dismissible message.
func (c *StylistClient) Recommend(ctx context.Context, photoDataURI string) (*ShoeRecommendation, error) {
	body, err := json.Marshal(recommendRequest{PhotoDataURI: photoDataURI})
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommendation request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/recommendations/shoes", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build recommendation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("style service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("style service returned status %d: %s", resp.StatusCode, string(data))
	}

	var result recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation response: %w", err)
	}
	if !result.Success || result.Data == nil {
		msg := "no recommendation returned"
		if result.Message != nil {
			msg = *result.Message
		}
		return nil, fmt.Errorf("style service error: %s", msg)
	}

	return result.Data, nil
}
