package workflow

import (
	"errors"
	"fmt"

	"github.com/neobank/payflow/pkg/metrics"
)

// State is the single visible overlay state of the payment page.
type State string

const (
	StateIdle       State = "IDLE"
	StateConfirming State = "CONFIRMING"
	StateSuccess    State = "SUCCESS"
	StateError      State = "ERROR"
)

// Event drives the presenter from one state to the next.
type Event string

const (
	EventValidateOK Event = "VALIDATE_OK"
	EventCancel     Event = "CANCEL"
	EventSubmitOK   Event = "SUBMIT_OK"
	EventSubmitFail Event = "SUBMIT_FAIL"
	EventDismiss    Event = "DISMISS"
	EventRetry      Event = "RETRY"
)

var ErrIllegalTransition = errors.New("illegal state transition")

// legalTransitions defines the allowed presenter transitions. Each key is a
// "from" state, and the value maps an event to the resulting state. Holding
// the full table in one place guarantees exactly one state is active and no
// two overlays can be shown at once.
var legalTransitions = map[State]map[Event]State{
	StateIdle: {
		EventValidateOK: StateConfirming,
	},
	StateConfirming: {
		EventCancel:     StateIdle,
		EventSubmitOK:   StateSuccess,
		EventSubmitFail: StateError,
	},
	StateSuccess: {
		EventDismiss: StateIdle,
	},
	StateError: {
		EventRetry:   StateIdle,
		EventDismiss: StateIdle,
	},
}

// Presenter is the four-state machine behind the payment page overlays.
type Presenter struct {
	state State
}

func NewPresenter() *Presenter {
	return &Presenter{state: StateIdle}
}

func (p *Presenter) State() State {
	return p.state
}

// Fire applies an event. Illegal events leave the state unchanged and
// return ErrIllegalTransition.
func (p *Presenter) Fire(event Event) error {
	next, ok := legalTransitions[p.state][event]
	if !ok {
		return fmt.Errorf("%w: %s does not accept %s", ErrIllegalTransition, p.state, event)
	}

	metrics.StateTransitionsTotal.WithLabelValues(string(p.state), string(next)).Inc()
	p.state = next
	return nil
}
