package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "case-sync"

// HTTPClient wraps resty.Client so adapters can share defaults.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that identifies itself as case-sync.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get("/files/case.json")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", userAgent)}
}
