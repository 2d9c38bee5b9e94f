package customHttpClient

import (
	"net/http"
	"time"

	"github.com/clearclause/contract-rag/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// Client is shared by outbound feed fetches so connections get reused.
var Client = &http.Client{
	Transport: customTransport,
	Timeout:   30 * time.Second,
}
