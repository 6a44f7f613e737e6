package workflow

import (
	"strings"

	"github.com/neobank/payflow/client"
	"github.com/neobank/payflow/validations"
)

// Validation failure messages, surfaced inline on the form.
const (
	MsgInvalidAmount        = "amount must be a positive number"
	MsgSameAccount          = "select two different accounts"
	MsgMissingTransferField = "missing source or destination account"
	MsgMissingCardField     = "missing card or merchant name"
	MsgUnknownMode          = "unknown transfer mode"
)

// ValidationError is a user-correctable form error. It never advances the
// presenter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PendingTransaction is a validated draft awaiting user confirmation. It is
// created by validation and destroyed on confirm or cancel.
type PendingTransaction struct {
	Mode            TransferMode `json:"mode"`
	SourceAccountID int64        `json:"sourceAccountId,omitempty"`
	ToAccountNumber string       `json:"toAccountNumber,omitempty"`
	CardID          int64        `json:"cardId,omitempty"`
	Merchant        string       `json:"merchant,omitempty"`
	Amount          float64      `json:"amount"`
}

// buildPendingTransaction checks the form against the mode-specific rules,
// in order, first failure wins. For self transfers the destination account
// number is resolved from the selected account.
func buildPendingTransaction(form FormState, accounts []client.Account) (*PendingTransaction, error) {
	amount, err := validations.ParseAmount(form.Amount)
	if err != nil {
		return nil, &ValidationError{Message: MsgInvalidAmount}
	}

	switch form.Mode {
	case ModeSelf:
		if form.SourceAccountID == 0 || form.DestAccountID == 0 || form.SourceAccountID == form.DestAccountID {
			return nil, &ValidationError{Message: MsgSameAccount}
		}
		destination, ok := findAccount(accounts, form.DestAccountID)
		if !ok {
			return nil, &ValidationError{Message: MsgSameAccount}
		}
		return &PendingTransaction{
			Mode:            ModeSelf,
			SourceAccountID: form.SourceAccountID,
			ToAccountNumber: destination.AccountNumber,
			Amount:          amount,
		}, nil

	case ModeToAccount:
		if form.SourceAccountID == 0 || strings.TrimSpace(form.ExternalAccountNumber) == "" {
			return nil, &ValidationError{Message: MsgMissingTransferField}
		}
		return &PendingTransaction{
			Mode:            ModeToAccount,
			SourceAccountID: form.SourceAccountID,
			ToAccountNumber: strings.TrimSpace(form.ExternalAccountNumber),
			Amount:          amount,
		}, nil

	case ModeCard:
		if form.SourceCardID == 0 || strings.TrimSpace(form.MerchantName) == "" {
			return nil, &ValidationError{Message: MsgMissingCardField}
		}
		return &PendingTransaction{
			Mode:     ModeCard,
			CardID:   form.SourceCardID,
			Merchant: strings.TrimSpace(form.MerchantName),
			Amount:   amount,
		}, nil
	}

	return nil, &ValidationError{Message: MsgUnknownMode}
}
