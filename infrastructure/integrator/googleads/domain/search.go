package googleadsdomain

import (
	"bytes"
	"strconv"
)

// Int64Value aceita inteiros enviados como número ou como texto, já que a API
// REST serializa int64 entre aspas.
type Int64Value int64

func (v *Int64Value) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*v = 0
		return nil
	}

	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*v = Int64Value(n)
		return nil
	}

	// valores como "12.0"
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*v = Int64Value(f)
	return nil
}

type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []SearchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

type SearchRow struct {
	Campaign Campaign `json:"campaign"`
	Segments Segments `json:"segments"`
	Metrics  Metrics  `json:"metrics"`
}

type Campaign struct {
	ResourceName string     `json:"resourceName"`
	ID           Int64Value `json:"id"`
	Name         string     `json:"name"`
	Status       string     `json:"status"`
}

type Segments struct {
	Date string `json:"date"`
}

type Metrics struct {
	Clicks           Int64Value `json:"clicks"`
	Conversions      float64    `json:"conversions"`
	ConversionsValue float64    `json:"conversionsValue"`
	CTR              float64    `json:"ctr"`
	AverageCPC       float64    `json:"averageCpc"`
	Impressions      Int64Value `json:"impressions"`
	CostMicros       Int64Value `json:"costMicros"`
}

// ErrorResponse é o envelope de erro das APIs do Google
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *ErrorResponse) IsRateLimited() bool {
	return e.Error.Code == 429 || e.Error.Status == "RESOURCE_EXHAUSTED"
}

func (e *ErrorResponse) IsUnauthenticated() bool {
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED" || e.Error.Status == "PERMISSION_DENIED"
}
