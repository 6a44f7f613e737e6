package payment

import (
	"github.com/neobank/payflow/client"
	"github.com/neobank/payflow/workflow"
)

// LoadResponse returns the loaded payment context with its defaulted form.
type LoadResponse struct {
	Accounts     []client.Account   `json:"accounts"`
	Cards        []client.Card      `json:"cards"`
	Destinations []client.Account   `json:"destinations"`
	Form         workflow.FormState `json:"form"`
}

// StateResponse is the full page snapshot: which overlay is visible, the
// form entries and, when present, the last submission result.
type StateResponse struct {
	State        workflow.State              `json:"state"`
	Form         workflow.FormState          `json:"form"`
	Destinations []client.Account            `json:"destinations"`
	LastResult   *workflow.TransactionResult `json:"lastResult,omitempty"`
}
