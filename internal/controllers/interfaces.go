package controllers

import (
	"net/url"

	"saarthi/models"
)

//go:generate mockery --case=snake --name=ClientCtrl
//go:generate mockery --case=snake --name=CryptoCtrl
//go:generate mockery --case=snake --name=TgmCtrl
//go:generate mockery --case=snake --name=AuthCtrl
//go:generate mockery --case=snake --name=ExchangeCtrl

type ClientCtrl interface {
	Send(method string, url *url.URL, body []byte, headers map[string]string) ([]byte, error)
}

type CryptoCtrl interface {
	GetSignature(payload string) string
}

type TgmCtrl interface {
	Send(text string) error
}

type AuthCtrl interface {
	VerifyToken(token string) (string, error)
}

type ExchangeCtrl interface {
	FetchTickers() (map[string]float64, error)
	GetPrice(symbol string) (float64, error)
	PlaceOrder(order *models.Order) (*models.ExecutionResult, error)
	FetchWallets(userID string) ([]models.Wallet, error)
	GetBalance(userID string) (float64, error)
}
