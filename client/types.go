package client

// Enum values for AccountType
const (
	AccountTypeSavings = "SAVINGS"
	AccountTypeCurrent = "CURRENT"
)

// Enum values for CardType
const (
	CardTypeDebit  = "DEBIT"
	CardTypeCredit = "CREDIT"
)

const CardStatusActive = "ACTIVE"

// Account is a bank account owned by the session user, as returned by the
// accounts service.
type Account struct {
	ID            int64   `json:"id"`
	AccountNumber string  `json:"accountNumber"`
	AccountType   string  `json:"accountType"`
	Balance       float64 `json:"balance"`
}

// Card is a payment card owned by the session user, as returned by the
// cards service.
type Card struct {
	ID              int64   `json:"id"`
	CardType        string  `json:"cardType"`
	MaskedNumber    string  `json:"maskedNumber"`
	AvailableAmount float64 `json:"availableAmount"`
	Status          string  `json:"status"`
}

// TransferRequest is the body of the account-to-account transfer call.
type TransferRequest struct {
	FromAccountID   int64   `json:"fromAccountId"`
	ToAccountNumber string  `json:"toAccountNumber"`
	Amount          float64 `json:"amount"`
}

// CardPaymentRequest is the body of the card payment call.
type CardPaymentRequest struct {
	CardID   int64   `json:"cardId"`
	Amount   float64 `json:"amount"`
	Merchant string  `json:"merchant"`
}

// TransactionResponse is the success body of a mutating payment call. The
// backend may return more fields; only the transaction id is consumed.
type TransactionResponse struct {
	ID string `json:"id"`
}
