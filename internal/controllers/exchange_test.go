package controllers_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saarthi/internal/controllers"
	"saarthi/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

const (
	testApiKey    = "test-api-key"
	testSecretKey = "test-secret-key"
)

func initExchangeController(url string) *controllers.ExchangeController {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	httpClient := &http.Client{Timeout: time.Second}

	return controllers.NewExchangeController(
		controllers.NewClientController(httpClient, logger),
		controllers.NewCryptoController(testSecretKey),
		url,
		testApiKey,
		logger,
	)
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecretKey))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func Test_GetSignature(t *testing.T) {
	crypto := controllers.NewCryptoController(testSecretKey)

	payload := `{"timestamp":1693400000000}`
	assert.Equal(t, sign([]byte(payload)), crypto.GetSignature(payload))
}

func Test_FetchTickers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchange/ticker", r.URL.Path)

		_, _ = w.Write([]byte(`[
			{"market":"BTCINR","last_price":"50,00,000"},
			{"market":"ethinr","last_price":"40.5"},
			{"market":"XRPINR","last_price":"n/a"},
			{"market":"","last_price":"1"}
		]`))
	}))
	defer srv.Close()

	c := initExchangeController(srv.URL)

	tickers, err := c.FetchTickers()
	assert.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"BTCINR": 5000000,
		"ETHINR": 40.5,
	}, tickers)

	price, err := c.GetPrice("ethinr")
	assert.NoError(t, err)
	assert.Equal(t, 40.5, price)

	_, err = c.GetPrice("DOGEINR")
	assert.Error(t, err)
}

func Test_PlaceOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchange/v1/derivatives/futures/orders/create", r.URL.Path)
		assert.Equal(t, testApiKey, r.Header.Get("X-AUTH-APIKEY"))

		body, err := ioutil.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, sign(body), r.Header.Get("X-AUTH-SIGNATURE"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"ex-1","status":"filled","avg_price":"501.5","total_quantity":"4","fee_amount":"1.25"}]`))
	}))
	defer srv.Close()

	c := initExchangeController(srv.URL)

	result, err := c.PlaceOrder(&models.Order{
		ID:       "order-1",
		Symbol:   "BTCINR",
		Side:     models.SideBuy,
		Type:     models.OrderTypeMarket,
		Quantity: 4,
		Leverage: 10,
	})
	assert.NoError(t, err)

	assert.Equal(t, "ex-1", result.ExchangeOrderID)
	assert.Equal(t, 501.5, result.FilledPrice)
	assert.Equal(t, 4.0, result.FilledQty)
	assert.Equal(t, 1.25, result.Fees)
}

func Test_PlaceOrder_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := initExchangeController(srv.URL)

	_, err := c.PlaceOrder(&models.Order{
		ID:     "order-1",
		Symbol: "BTCINR",
		Side:   models.SideBuy,
		Type:   models.OrderTypeMarket,
	})
	assert.ErrorIs(t, err, controllers.ErrEmptyExchangeResponse)
}

func Test_GetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchange/v1/derivatives/futures/wallets", r.URL.Path)

		_, _ = w.Write([]byte(`[
			{"currency_short_name":"USDT","balance":"12.5"},
			{"currency_short_name":"INR","balance":"10000.75"}
		]`))
	}))
	defer srv.Close()

	c := initExchangeController(srv.URL)

	balance, err := c.GetBalance("u1")
	assert.NoError(t, err)
	assert.Equal(t, 10000.75, balance)
}

func Test_FetchWallets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchange/v1/derivatives/futures/wallets", r.URL.Path)
		assert.Equal(t, testApiKey, r.Header.Get("X-AUTH-APIKEY"))

		body, err := ioutil.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, sign(body), r.Header.Get("X-AUTH-SIGNATURE"))

		_, _ = w.Write([]byte(`[
			{"currency_short_name":"usdt","balance":"12.5"},
			{"currency_short_name":"INR","balance":"10000.75"},
			{"currency_short_name":"BTC","balance":"n/a"}
		]`))
	}))
	defer srv.Close()

	c := initExchangeController(srv.URL)

	wallets, err := c.FetchWallets("u1")
	assert.NoError(t, err)

	assert.Equal(t, []models.Wallet{
		{Currency: "USDT", Balance: 12.5},
		{Currency: "INR", Balance: 10000.75},
	}, wallets)
}

func Test_Send_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	c := initExchangeController(srv.URL)

	_, err := c.FetchTickers()
	assert.ErrorIs(t, err, controllers.ErrExchangeTimeout)
}
