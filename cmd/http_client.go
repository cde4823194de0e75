package main

import (
	"net/http"
	"time"
)

const httpClientTimeout = 10 * time.Second

func (a *App) initHTTPClient() {
	a.HTTPClient = &http.Client{
		Timeout: httpClientTimeout,
	}
}
