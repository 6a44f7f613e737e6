package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	pkg "github.com/neobank/payflow/pkg/config"
	"github.com/neobank/payflow/pkg/session"
)

// APIError is a non-2xx response from a backend service, decoded from its
// {code, message} error body.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error %s (http %d): %s", e.Code, e.StatusCode, e.Message)
}

// BankServices is the REST boundary to the backend bank services.
type BankServices interface {
	// GetAccounts fetches the accounts owned by the session user
	GetAccounts(ctx context.Context, s *session.Session) ([]Account, error)
	// GetActiveCards fetches the session user's cards with status ACTIVE
	GetActiveCards(ctx context.Context, s *session.Session) ([]Card, error)
	// Transfer moves money from an owned account to an account number
	Transfer(ctx context.Context, s *session.Session, req TransferRequest) (TransactionResponse, error)
	// PayCard charges a card payment to a merchant
	PayCard(ctx context.Context, s *session.Session, req CardPaymentRequest) (TransactionResponse, error)
}

// RestClient implements BankServices over plain HTTP.
type RestClient struct {
	httpClient  *http.Client
	accountsURL string
	cardsURL    string
	paymentsURL string
}

func NewRestClient(config *pkg.Config) *RestClient {
	return &RestClient{
		httpClient:  &http.Client{Timeout: config.HttpClientTimeout},
		accountsURL: config.AccountsServiceURL,
		cardsURL:    config.CardsServiceURL,
		paymentsURL: config.PaymentsServiceURL,
	}
}

func (c *RestClient) GetAccounts(ctx context.Context, s *session.Session) ([]Account, error) {
	endpoint := fmt.Sprintf("%s/accounts?userId=%s", c.accountsURL, url.QueryEscape(s.UserID))

	var accounts []Account
	if err := c.doRequest(ctx, s, http.MethodGet, endpoint, nil, &accounts); err != nil {
		return nil, fmt.Errorf("fail to fetch accounts: %w", err)
	}

	return accounts, nil
}

func (c *RestClient) GetActiveCards(ctx context.Context, s *session.Session) ([]Card, error) {
	endpoint := fmt.Sprintf("%s/cards?mine=true", c.cardsURL)

	var cards []Card
	if err := c.doRequest(ctx, s, http.MethodGet, endpoint, nil, &cards); err != nil {
		return nil, fmt.Errorf("fail to fetch cards: %w", err)
	}

	// Only ACTIVE cards are eligible payment sources
	active := make([]Card, 0, len(cards))
	for _, card := range cards {
		if card.Status == CardStatusActive {
			active = append(active, card)
		}
	}

	return active, nil
}

func (c *RestClient) Transfer(ctx context.Context, s *session.Session, req TransferRequest) (TransactionResponse, error) {
	endpoint := fmt.Sprintf("%s/transfer", c.paymentsURL)

	var result TransactionResponse
	if err := c.doRequest(ctx, s, http.MethodPost, endpoint, req, &result); err != nil {
		return TransactionResponse{}, err
	}

	return result, nil
}

func (c *RestClient) PayCard(ctx context.Context, s *session.Session, req CardPaymentRequest) (TransactionResponse, error) {
	endpoint := fmt.Sprintf("%s/payment/card", c.paymentsURL)

	var result TransactionResponse
	if err := c.doRequest(ctx, s, http.MethodPost, endpoint, req, &result); err != nil {
		return TransactionResponse{}, err
	}

	return result, nil
}

func (c *RestClient) doRequest(ctx context.Context, s *session.Session, method, endpoint string, body, out interface{}) error {
	if err := s.Valid(); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("fail to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}

	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.Token))
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		apiErr := &APIError{StatusCode: response.StatusCode}
		if err := json.NewDecoder(response.Body).Decode(apiErr); err != nil || apiErr.Code == "" {
			apiErr.Code = fmt.Sprintf("HTTP_%d", response.StatusCode)
			apiErr.Message = http.StatusText(response.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(response.Body).Decode(out)
}
