package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	pkg "github.com/neobank/payflow/pkg/config"
	"github.com/neobank/payflow/pkg/session"
	"github.com/neobank/payflow/util"
	"github.com/stretchr/testify/require"
)

func testSession() *session.Session {
	return &session.Session{
		ID:        uuid.NewString(),
		UserID:    util.RandomUserID(),
		Token:     util.RandomString(32),
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Minute),
	}
}

func testClient(serverURL string) *RestClient {
	return NewRestClient(&pkg.Config{
		AccountsServiceURL: serverURL,
		CardsServiceURL:    serverURL,
		PaymentsServiceURL: serverURL,
		HttpClientTimeout:  time.Second,
	})
}

func TestGetAccounts(t *testing.T) {
	s := testSession()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/accounts", r.URL.Path)
		require.Equal(t, s.UserID, r.URL.Query().Get("userId"))
		require.Equal(t, fmt.Sprintf("Bearer %s", s.Token), r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode([]Account{
			{ID: 1, AccountNumber: "A1", AccountType: AccountTypeSavings, Balance: 100},
			{ID: 2, AccountNumber: "A2", AccountType: AccountTypeCurrent, Balance: 250},
		})
	}))
	defer ts.Close()

	accounts, err := testClient(ts.URL).GetAccounts(context.Background(), s)

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	require.Equal(t, "A1", accounts[0].AccountNumber)
	require.Equal(t, float64(250), accounts[1].Balance)
}

func TestGetActiveCardsFiltersInactive(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cards", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("mine"))

		json.NewEncoder(w).Encode([]Card{
			{ID: 1, CardType: CardTypeDebit, Status: CardStatusActive},
			{ID: 2, CardType: CardTypeCredit, Status: "BLOCKED"},
			{ID: 3, CardType: CardTypeCredit, Status: "EXPIRED"},
		})
	}))
	defer ts.Close()

	cards, err := testClient(ts.URL).GetActiveCards(context.Background(), testSession())

	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.Equal(t, int64(1), cards[0].ID)
}

func TestTransferPostsBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transfer", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body TransferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, int64(1), body.FromAccountID)
		require.Equal(t, "A2", body.ToAccountNumber)
		require.Equal(t, float64(100), body.Amount)

		json.NewEncoder(w).Encode(TransactionResponse{ID: "TXN1"})
	}))
	defer ts.Close()

	result, err := testClient(ts.URL).Transfer(context.Background(), testSession(), TransferRequest{
		FromAccountID:   1,
		ToAccountNumber: "A2",
		Amount:          100,
	})

	require.NoError(t, err)
	require.Equal(t, "TXN1", result.ID)
}

func TestPayCardDecodesErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payment/card", r.URL.Path)

		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "CARD_LIMIT",
			"message": "card limit exceeded",
		})
	}))
	defer ts.Close()

	_, err := testClient(ts.URL).PayCard(context.Background(), testSession(), CardPaymentRequest{
		CardID:   9,
		Amount:   50,
		Merchant: "BOOKSTORE",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.Equal(t, "CARD_LIMIT", apiErr.Code)
	require.Equal(t, "card limit exceeded", apiErr.Message)
}

func TestErrorBodyFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	_, err := testClient(ts.URL).GetAccounts(context.Background(), testSession())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "HTTP_502", apiErr.Code)
}

func TestExpiredSessionRejectedBeforeCall(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	s := testSession()
	s.ExpiresAt = time.Now().Add(-time.Minute)

	_, err := testClient(ts.URL).GetAccounts(context.Background(), s)

	require.ErrorIs(t, err, session.ErrSessionExpired)
	require.False(t, called)
}
