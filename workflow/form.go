package workflow

import "github.com/neobank/payflow/client"

// TransferMode selects which kind of payment the form submits.
type TransferMode string

const (
	ModeSelf      TransferMode = "SELF"
	ModeToAccount TransferMode = "TO_ACCOUNT"
	ModeCard      TransferMode = "CARD"
)

func (m TransferMode) Valid() bool {
	switch m {
	case ModeSelf, ModeToAccount, ModeCard:
		return true
	}
	return false
}

// FormState holds the user's current payment form entries. The amount is
// kept as the raw input string until validation parses it.
type FormState struct {
	Mode                  TransferMode `json:"mode"`
	SourceAccountID       int64        `json:"sourceAccountId"`
	DestAccountID         int64        `json:"destAccountId"`
	ExternalAccountNumber string       `json:"externalAccountNumber"`
	SourceCardID          int64        `json:"sourceCardId"`
	MerchantName          string       `json:"merchantName"`
	Amount                string       `json:"amount"`
}

// DestinationCandidates returns the accounts eligible as a self-transfer
// destination: every account except the selected source. It is a pure
// function of its inputs so the candidate list can never diverge from the
// account list it was derived from.
func DestinationCandidates(accounts []client.Account, sourceAccountID int64) []client.Account {
	candidates := make([]client.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.ID != sourceAccountID {
			candidates = append(candidates, account)
		}
	}
	return candidates
}

func findAccount(accounts []client.Account, id int64) (client.Account, bool) {
	for _, account := range accounts {
		if account.ID == id {
			return account, true
		}
	}
	return client.Account{}, false
}

func findCard(cards []client.Card, id int64) (client.Card, bool) {
	for _, card := range cards {
		if card.ID == id {
			return card, true
		}
	}
	return client.Card{}, false
}
