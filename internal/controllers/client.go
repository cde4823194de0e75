package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ClientController struct {
	client *http.Client
	logger *logrus.Logger
}

func NewClientController(
	client *http.Client,
	logger *logrus.Logger,
) *ClientController {
	return &ClientController{
		client: client,
		logger: logger,
	}
}

var ErrExchangeTimeout = errors.New("exchange timeout")

type ErrStruct struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *ClientController) Send(method string, url *url.URL, body []byte, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest(method, url.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Add(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrExchangeTimeout
		}

		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	out, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusBadRequest {
			var errMsg ErrStruct
			if err := json.Unmarshal(out, &errMsg); err == nil && errMsg.Message != "" {
				return nil, fmt.Errorf("%s Err:%+v", "exchange rejected request", errMsg)
			}
		}

		return nil, errors.New(fmt.Sprintf("statusCode %d; resp %s;", resp.StatusCode, out))
	}

	return out, nil
}

func isTimeout(err error) bool {
	type timeout interface {
		Timeout() bool
	}

	for err != nil {
		if t, ok := err.(timeout); ok && t.Timeout() {
			return true
		}
		err = errors.Unwrap(err)
	}

	return false
}
