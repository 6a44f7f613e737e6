package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/neobank/payflow/client"
	"github.com/neobank/payflow/pkg/metrics"
	"github.com/neobank/payflow/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Status values of a terminal transaction result
const (
	StatusCompleted = "Completed"
	StatusFailed    = "Failed"
)

const (
	fallbackErrorCode    = "UNKNOWN"
	fallbackErrorMessage = "payment service is unavailable, please try again"
)

var (
	ErrNotLoaded          = errors.New("payment context is not loaded")
	ErrFormNotEditable    = errors.New("form is not editable in the current state")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrUnknownAccount     = errors.New("account does not belong to user")
	ErrUnknownCard        = errors.New("card does not belong to user")
	ErrUnknownMode        = errors.New("unknown transfer mode")
)

// TransactionResult is the terminal outcome of a submission, shown by the
// success or error overlay and discarded when the user dismisses it.
type TransactionResult struct {
	Status        string       `json:"status"`
	TransactionID string       `json:"transactionId,omitempty"`
	ErrorCode     string       `json:"errorCode,omitempty"`
	Message       string       `json:"message,omitempty"`
	Mode          TransferMode `json:"mode,omitempty"`
	Amount        float64      `json:"amount,omitempty"`
	Participants  string       `json:"participants,omitempty"`
	Timestamp     time.Time    `json:"timestamp"`
}

// Workflow drives one user's payment page: loading accounts and cards,
// editing the form, validating it into a pending transaction, and submitting
// that transaction to the backend. All operations are safe for concurrent
// use; at most one submission is in flight at a time.
type Workflow struct {
	mu        sync.Mutex
	session   *session.Session
	bank      client.BankServices
	presenter *Presenter

	form     FormState
	accounts []client.Account
	cards    []client.Card
	loaded   bool

	pending    *PendingTransaction
	inFlight   bool
	lastResult *TransactionResult
}

func New(s *session.Session, bank client.BankServices) *Workflow {
	return &Workflow{
		session:   s,
		bank:      bank,
		presenter: NewPresenter(),
		form:      FormState{Mode: ModeSelf},
	}
}

// Load fetches the user's accounts and active cards concurrently. Both
// fetches must succeed; either failing aborts initialization and leaves the
// workflow unloaded. On success the source account defaults to the first
// account, the self-transfer destination to the second, and the card to the
// first active card.
func (w *Workflow) Load(ctx context.Context) error {
	timer := prometheus.NewTimer(metrics.LoadDuration)
	defer timer.ObserveDuration()

	var accounts []client.Account
	var cards []client.Card

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		accounts, err = w.bank.GetAccounts(groupCtx, w.session)
		return err
	})
	group.Go(func() error {
		var err error
		cards, err = w.bank.GetActiveCards(groupCtx, w.session)
		return err
	})

	if err := group.Wait(); err != nil {
		return fmt.Errorf("fail to load payment context: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.accounts = accounts
	w.cards = cards
	w.loaded = true

	if len(accounts) > 0 {
		w.form.SourceAccountID = accounts[0].ID
	}
	if len(accounts) > 1 {
		w.form.DestAccountID = accounts[1].ID
	}
	if len(cards) > 0 {
		w.form.SourceCardID = cards[0].ID
	}

	return nil
}

// SetMode switches the transfer mode. The amount and other entries persist
// across mode switches; validation re-checks them for the new mode.
func (w *Workflow) SetMode(mode TransferMode) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editable(); err != nil {
		return err
	}
	if !mode.Valid() {
		return ErrUnknownMode
	}

	w.form.Mode = mode
	return nil
}

// SetSourceAccount selects the source account. Under self-transfer mode a
// destination that is no longer eligible is reset to the first remaining
// candidate, or cleared when none is left.
func (w *Workflow) SetSourceAccount(id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editable(); err != nil {
		return err
	}
	if !w.loaded {
		return ErrNotLoaded
	}
	if _, ok := findAccount(w.accounts, id); !ok {
		return ErrUnknownAccount
	}

	w.form.SourceAccountID = id

	if w.form.Mode == ModeSelf {
		candidates := DestinationCandidates(w.accounts, id)
		if _, ok := findAccount(candidates, w.form.DestAccountID); !ok {
			if len(candidates) > 0 {
				w.form.DestAccountID = candidates[0].ID
			} else {
				w.form.DestAccountID = 0
			}
		}
	}

	return nil
}

// SetDestinationAccount selects the self-transfer destination. Distinctness
// from the source is checked at validation time, not here.
func (w *Workflow) SetDestinationAccount(id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editable(); err != nil {
		return err
	}
	if !w.loaded {
		return ErrNotLoaded
	}
	if _, ok := findAccount(w.accounts, id); !ok {
		return ErrUnknownAccount
	}

	w.form.DestAccountID = id
	return nil
}

// SetSourceCard selects the card used for card payments.
func (w *Workflow) SetSourceCard(id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editable(); err != nil {
		return err
	}
	if !w.loaded {
		return ErrNotLoaded
	}
	if _, ok := findCard(w.cards, id); !ok {
		return ErrUnknownCard
	}

	w.form.SourceCardID = id
	return nil
}

func (w *Workflow) SetExternalAccountNumber(number string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editable(); err != nil {
		return err
	}

	w.form.ExternalAccountNumber = number
	return nil
}

func (w *Workflow) SetMerchantName(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editable(); err != nil {
		return err
	}

	w.form.MerchantName = name
	return nil
}

func (w *Workflow) SetAmount(amount string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editable(); err != nil {
		return err
	}

	w.form.Amount = amount
	return nil
}

// Validate checks the current form and, on success, stores the pending
// transaction and moves the presenter to the confirming state. No network
// call happens here; submission is a separate, explicit confirmation.
func (w *Workflow) Validate() (*PendingTransaction, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.loaded {
		return nil, ErrNotLoaded
	}
	if w.presenter.State() != StateIdle {
		return nil, fmt.Errorf("%w: %s does not accept %s", ErrIllegalTransition, w.presenter.State(), EventValidateOK)
	}

	pending, err := buildPendingTransaction(w.form, w.accounts)
	if err != nil {
		return nil, err
	}

	w.pending = pending
	if err := w.presenter.Fire(EventValidateOK); err != nil {
		return nil, err
	}

	result := *pending
	return &result, nil
}

// Confirm submits the pending transaction. It is only reachable from the
// confirming state and at most one submission is in flight at a time. The
// outcome, success or failure, is returned as a TransactionResult; failures
// of the backend call are a domain outcome, not an error.
func (w *Workflow) Confirm(ctx context.Context) (*TransactionResult, error) {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if w.presenter.State() != StateConfirming || w.pending == nil {
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: no pending transaction to submit", ErrIllegalTransition)
	}

	pending := *w.pending
	w.inFlight = true
	w.mu.Unlock()

	var response client.TransactionResponse
	var err error

	switch pending.Mode {
	case ModeCard:
		response, err = w.bank.PayCard(ctx, w.session, client.CardPaymentRequest{
			CardID:   pending.CardID,
			Amount:   pending.Amount,
			Merchant: pending.Merchant,
		})
	default:
		response, err = w.bank.Transfer(ctx, w.session, client.TransferRequest{
			FromAccountID:   pending.SourceAccountID,
			ToAccountNumber: pending.ToAccountNumber,
			Amount:          pending.Amount,
		})
	}

	w.mu.Lock()
	w.inFlight = false
	w.pending = nil

	if err != nil {
		result := failureResult(err)
		w.lastResult = result
		w.presenter.Fire(EventSubmitFail)
		metrics.SubmissionsTotal.WithLabelValues(string(pending.Mode), "failure").Inc()
		w.mu.Unlock()

		log.Warn().Err(err).Str("mode", string(pending.Mode)).Msg("payment submission failed")
		return result, nil
	}

	result := w.successResult(pending, response)
	w.lastResult = result
	// a fresh entry starts clean; account and card selections are kept
	w.form.Amount = ""
	w.form.MerchantName = ""
	w.form.ExternalAccountNumber = ""
	w.presenter.Fire(EventSubmitOK)
	metrics.SubmissionsTotal.WithLabelValues(string(pending.Mode), "success").Inc()
	w.mu.Unlock()

	log.Info().
		Str("mode", string(pending.Mode)).
		Str("transaction_id", result.TransactionID).
		Float64("amount", result.Amount).
		Msg("payment submitted")

	if pending.Mode != ModeCard {
		w.refreshBalances(ctx)
	}

	return result, nil
}

// Cancel abandons the pending transaction and returns to the form. A
// submission that is already in flight cannot be cancelled; it runs to
// completion or failure.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlight {
		return ErrSubmissionInFlight
	}
	if err := w.presenter.Fire(EventCancel); err != nil {
		return err
	}

	w.pending = nil
	return nil
}

// Dismiss closes the success or error overlay and discards its result.
func (w *Workflow) Dismiss() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.presenter.Fire(EventDismiss); err != nil {
		return err
	}

	w.lastResult = nil
	return nil
}

// Retry returns from the error overlay to the form. The previously entered
// amount, merchant and destination are preserved for another attempt.
func (w *Workflow) Retry() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.presenter.Fire(EventRetry); err != nil {
		return err
	}

	w.lastResult = nil
	return nil
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presenter.State()
}

func (w *Workflow) Form() FormState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

func (w *Workflow) Loaded() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loaded
}

func (w *Workflow) Accounts() []client.Account {
	w.mu.Lock()
	defer w.mu.Unlock()
	accounts := make([]client.Account, len(w.accounts))
	copy(accounts, w.accounts)
	return accounts
}

func (w *Workflow) Cards() []client.Card {
	w.mu.Lock()
	defer w.mu.Unlock()
	cards := make([]client.Card, len(w.cards))
	copy(cards, w.cards)
	return cards
}

// Destinations returns the currently eligible self-transfer destinations.
func (w *Workflow) Destinations() []client.Account {
	w.mu.Lock()
	defer w.mu.Unlock()
	return DestinationCandidates(w.accounts, w.form.SourceAccountID)
}

func (w *Workflow) LastResult() *TransactionResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.lastResult == nil {
		return nil
	}
	result := *w.lastResult
	return &result
}

// editable reports whether the form can be edited: only while the idle form
// is shown and nothing is in flight.
func (w *Workflow) editable() error {
	if w.inFlight {
		return ErrSubmissionInFlight
	}
	if w.presenter.State() != StateIdle {
		return ErrFormNotEditable
	}
	return nil
}

func (w *Workflow) successResult(pending PendingTransaction, response client.TransactionResponse) *TransactionResult {
	transactionID := response.ID
	if transactionID == "" {
		// backend omitted the id; fabricate a client-side one so the
		// receipt is still renderable
		transactionID = fmt.Sprintf("TXN-%d", time.Now().UnixMilli())
	}

	return &TransactionResult{
		Status:        StatusCompleted,
		TransactionID: transactionID,
		Mode:          pending.Mode,
		Amount:        pending.Amount,
		Participants:  w.participants(pending),
		Timestamp:     time.Now(),
	}
}

func failureResult(err error) *TransactionResult {
	code := fallbackErrorCode
	message := fallbackErrorMessage

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code != "" {
			code = apiErr.Code
		}
		if apiErr.Message != "" {
			message = apiErr.Message
		}
	}

	return &TransactionResult{
		Status:    StatusFailed,
		ErrorCode: code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func (w *Workflow) participants(pending PendingTransaction) string {
	if pending.Mode == ModeCard {
		if card, ok := findCard(w.cards, pending.CardID); ok {
			return fmt.Sprintf("%s to %s", card.MaskedNumber, pending.Merchant)
		}
		return pending.Merchant
	}

	if source, ok := findAccount(w.accounts, pending.SourceAccountID); ok {
		return fmt.Sprintf("%s to %s", source.AccountNumber, pending.ToAccountNumber)
	}
	return pending.ToAccountNumber
}

// refreshBalances re-fetches the account list after a successful transfer so
// displayed balances match the backend. Best effort only; the submission
// outcome is already final.
func (w *Workflow) refreshBalances(ctx context.Context) {
	accounts, err := w.bank.GetAccounts(ctx, w.session)
	if err != nil {
		log.Warn().Err(err).Str("user_id", w.session.UserID).Msg("fail to refresh account balances")
		return
	}

	w.mu.Lock()
	w.accounts = accounts
	w.mu.Unlock()
}
