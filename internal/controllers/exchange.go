package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"saarthi/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	tickerUrlPath      = "/exchange/ticker"
	orderCreateUrlPath = "/exchange/v1/derivatives/futures/orders/create"
	walletsUrlPath     = "/exchange/v1/derivatives/futures/wallets"
)

var ErrEmptyExchangeResponse = errors.New("empty exchange response")

// ExchangeController talks to the futures exchange REST API. Private
// endpoints are signed with HMAC-SHA256 over the JSON body.
type ExchangeController struct {
	clientController ClientCtrl
	cryptoController CryptoCtrl

	url    string
	apiKey string

	logger *logrus.Logger
}

func NewExchangeController(
	client ClientCtrl,
	crypto CryptoCtrl,
	url string,
	apiKey string,
	logger *logrus.Logger,
) *ExchangeController {
	return &ExchangeController{
		clientController: client,
		cryptoController: crypto,
		url:              url,
		apiKey:           apiKey,
		logger:           logger,
	}
}

func (c *ExchangeController) signedHeaders(body []byte) map[string]string {
	return map[string]string{
		"X-AUTH-APIKEY":    c.apiKey,
		"X-AUTH-SIGNATURE": c.cryptoController.GetSignature(string(body)),
	}
}

func (c *ExchangeController) FetchTickers() (map[string]float64, error) {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(tickerUrlPath)

	req, err := c.clientController.Send(http.MethodGet, baseURL, nil, nil)
	if err != nil {
		return nil, err
	}

	type reqJson struct {
		Market    string `json:"market"`
		LastPrice string `json:"last_price"`
	}
	var out []reqJson

	if err := json.Unmarshal(req, &out); err != nil {
		return nil, err
	}

	tickers := make(map[string]float64, len(out))
	for _, t := range out {
		if t.Market == "" || t.LastPrice == "" {
			continue
		}

		price, err := strconv.ParseFloat(strings.ReplaceAll(t.LastPrice, ",", ""), 64)
		if err != nil {
			c.logger.
				WithField("market", t.Market).
				Debug(err)

			continue
		}

		tickers[strings.ToUpper(t.Market)] = price
	}

	return tickers, nil
}

func (c *ExchangeController) GetPrice(symbol string) (float64, error) {
	tickers, err := c.FetchTickers()
	if err != nil {
		return 0, err
	}

	price, ok := tickers[strings.ToUpper(symbol)]
	if !ok {
		return 0, errors.Errorf("ticker %s not found", symbol)
	}

	return price, nil
}

func (c *ExchangeController) PlaceOrder(order *models.Order) (*models.ExecutionResult, error) {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(orderCreateUrlPath)

	side := "buy"
	if order.Side == models.SideSell {
		side = "sell"
	}

	orderType := "market_order"
	if order.Type == models.OrderTypeLimit {
		orderType = "limit_order"
	}

	payload := struct {
		Timestamp int64 `json:"timestamp"`
		Order     struct {
			Market        string  `json:"market"`
			Side          string  `json:"side"`
			OrderType     string  `json:"order_type"`
			Price         float64 `json:"price,omitempty"`
			TotalQuantity float64 `json:"total_quantity"`
			Leverage      int     `json:"leverage"`
			TimeInForce   string  `json:"time_in_force"`
			ClientOrderID string  `json:"client_order_id"`
		} `json:"order"`
	}{
		Timestamp: time.Now().UnixMilli(),
	}

	payload.Order.Market = order.Symbol
	payload.Order.Side = side
	payload.Order.OrderType = orderType
	payload.Order.TotalQuantity = order.Quantity
	payload.Order.Leverage = order.Leverage
	payload.Order.TimeInForce = "good_till_cancel"
	payload.Order.ClientOrderID = fmt.Sprintf("%s-%d", order.ID, payload.Timestamp)
	if order.Type == models.OrderTypeLimit {
		payload.Order.Price = order.Price
	}

	body, err := json.Marshal(&payload)
	if err != nil {
		return nil, err
	}

	req, err := c.clientController.Send(http.MethodPost, baseURL, body, c.signedHeaders(body))
	if err != nil {
		return nil, err
	}

	type reqJson struct {
		ID            string `json:"id"`
		Status        string `json:"status"`
		AvgPrice      string `json:"avg_price"`
		TotalQuantity string `json:"total_quantity"`
		FeeAmount     string `json:"fee_amount"`
	}
	var out []reqJson

	if err := json.Unmarshal(req, &out); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return nil, ErrEmptyExchangeResponse
	}

	filledPrice, err := strconv.ParseFloat(out[0].AvgPrice, 64)
	if err != nil {
		filledPrice = order.Price
	}

	filledQty, err := strconv.ParseFloat(out[0].TotalQuantity, 64)
	if err != nil {
		filledQty = order.Quantity
	}

	fees, _ := strconv.ParseFloat(out[0].FeeAmount, 64)

	return &models.ExecutionResult{
		ExchangeOrderID: out[0].ID,
		FilledPrice:     filledPrice,
		FilledQty:       filledQty,
		Fees:            fees,
	}, nil
}

// FetchWallets returns every futures wallet for the user. Wallets with
// an unparsable balance are skipped.
func (c *ExchangeController) FetchWallets(userID string) ([]models.Wallet, error) {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(walletsUrlPath)

	payload := struct {
		Timestamp int64 `json:"timestamp"`
	}{
		Timestamp: time.Now().UnixMilli(),
	}

	body, err := json.Marshal(&payload)
	if err != nil {
		return nil, err
	}

	req, err := c.clientController.Send(http.MethodGet, baseURL, body, c.signedHeaders(body))
	if err != nil {
		return nil, err
	}

	type reqJson struct {
		CurrencyShortName string `json:"currency_short_name"`
		Balance           string `json:"balance"`
	}
	var out []reqJson

	if err := json.Unmarshal(req, &out); err != nil {
		return nil, err
	}

	wallets := make([]models.Wallet, 0, len(out))
	for _, w := range out {
		balance, err := strconv.ParseFloat(w.Balance, 64)
		if err != nil {
			c.logger.
				WithField("currency", w.CurrencyShortName).
				Debug(err)

			continue
		}

		wallets = append(wallets, models.Wallet{
			Currency: strings.ToUpper(w.CurrencyShortName),
			Balance:  balance,
		})
	}

	return wallets, nil
}

func (c *ExchangeController) GetBalance(userID string) (float64, error) {
	wallets, err := c.FetchWallets(userID)
	if err != nil {
		return 0, err
	}

	for _, w := range wallets {
		if w.Currency == "INR" {
			return w.Balance, nil
		}
	}

	return 0, errors.Errorf("INR futures wallet not found for user %s", userID)
}
