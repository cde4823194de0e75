package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const verifyUrlPath = "/api/auth/verify"

var ErrUnauthorized = errors.New("unauthorized")

// AuthController delegates token verification to the auth service.
type AuthController struct {
	clientController ClientCtrl

	url string

	logger *logrus.Logger
}

func NewAuthController(
	client ClientCtrl,
	url string,
	logger *logrus.Logger,
) *AuthController {
	return &AuthController{
		clientController: client,
		url:              url,
		logger:           logger,
	}
}

func (c *AuthController) VerifyToken(token string) (string, error) {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return "", err
	}

	baseURL.Path = path.Join(verifyUrlPath)

	req, err := c.clientController.Send(http.MethodGet, baseURL, nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return "", ErrUnauthorized
	}

	type reqJson struct {
		UserID string `json:"user_id"`
	}
	var out reqJson

	if err := json.Unmarshal(req, &out); err != nil {
		return "", err
	}

	if out.UserID == "" {
		return "", ErrUnauthorized
	}

	return out.UserID, nil
}
