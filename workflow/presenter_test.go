package workflow

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresenterLegalTransitions(t *testing.T) {
	testCases := []struct {
		name  string
		from  State
		event Event
		want  State
	}{
		{name: "ValidateFromIdle", from: StateIdle, event: EventValidateOK, want: StateConfirming},
		{name: "CancelFromConfirming", from: StateConfirming, event: EventCancel, want: StateIdle},
		{name: "SubmitOKFromConfirming", from: StateConfirming, event: EventSubmitOK, want: StateSuccess},
		{name: "SubmitFailFromConfirming", from: StateConfirming, event: EventSubmitFail, want: StateError},
		{name: "DismissFromSuccess", from: StateSuccess, event: EventDismiss, want: StateIdle},
		{name: "RetryFromError", from: StateError, event: EventRetry, want: StateIdle},
		{name: "DismissFromError", from: StateError, event: EventDismiss, want: StateIdle},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			presenter := &Presenter{state: tc.from}

			err := presenter.Fire(tc.event)

			require.NoError(t, err)
			require.Equal(t, tc.want, presenter.State())
		})
	}
}

func TestPresenterIllegalTransitions(t *testing.T) {
	testCases := []struct {
		name  string
		from  State
		event Event
	}{
		{name: "SubmitFromIdle", from: StateIdle, event: EventSubmitOK},
		{name: "DismissFromIdle", from: StateIdle, event: EventDismiss},
		{name: "RetryFromIdle", from: StateIdle, event: EventRetry},
		{name: "ValidateFromConfirming", from: StateConfirming, event: EventValidateOK},
		{name: "DismissFromConfirming", from: StateConfirming, event: EventDismiss},
		{name: "CancelFromSuccess", from: StateSuccess, event: EventCancel},
		{name: "RetryFromSuccess", from: StateSuccess, event: EventRetry},
		{name: "SubmitFromError", from: StateError, event: EventSubmitOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			presenter := &Presenter{state: tc.from}

			err := presenter.Fire(tc.event)

			require.ErrorIs(t, err, ErrIllegalTransition)
			require.Equal(t, tc.from, presenter.State())
		})
	}
}

// TestPresenterAlwaysSingleState drives the machine with random events and
// checks it is always in exactly one of the four known states.
func TestPresenterAlwaysSingleState(t *testing.T) {
	events := []Event{
		EventValidateOK,
		EventCancel,
		EventSubmitOK,
		EventSubmitFail,
		EventDismiss,
		EventRetry,
	}
	known := map[State]bool{
		StateIdle:       true,
		StateConfirming: true,
		StateSuccess:    true,
		StateError:      true,
	}

	presenter := NewPresenter()
	require.Equal(t, StateIdle, presenter.State())

	for i := 0; i < 1000; i++ {
		presenter.Fire(events[rand.Intn(len(events))])
		require.True(t, known[presenter.State()], "unknown state %s", presenter.State())
	}
}
