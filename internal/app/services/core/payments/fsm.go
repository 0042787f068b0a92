package payments

import "fmt"

// State is the payment-callback processing state. PROCESSING is the only
// entry state; SUCCESS_CONFIRMED, CANCELLED and ERROR are terminal.
type State string

const (
	StateProcessing            State = "PROCESSING"
	StateSuccessPendingConfirm State = "SUCCESS_PENDING_CONFIRM"
	StateSuccessConfirmed      State = "SUCCESS_CONFIRMED"
	StateFailed                State = "FAILED"
	StateCancelled             State = "CANCELLED"
	StateError                 State = "ERROR"
)

type Event string

const (
	EventGatewaySuccess   Event = "GATEWAY_SUCCESS"
	EventGatewayFailure   Event = "GATEWAY_FAILURE"
	EventConfirmCompleted Event = "CONFIRM_COMPLETED"
	EventCancelCompleted  Event = "CANCEL_COMPLETED"
	EventFault            Event = "FAULT"
)

var transitions = map[State]map[Event]State{
	StateProcessing: {
		EventGatewaySuccess: StateSuccessPendingConfirm,
		EventGatewayFailure: StateFailed,
		EventFault:          StateError,
	},
	StateSuccessPendingConfirm: {
		EventConfirmCompleted: StateSuccessConfirmed,
		EventFault:            StateError,
	},
	StateFailed: {
		EventCancelCompleted: StateCancelled,
		EventFault:           StateError,
	},
}

// Transition applies one event to a state. Unknown moves, including any
// event on a terminal state, are rejected and leave the state unchanged.
func Transition(state State, event Event) (State, error) {
	if next, ok := transitions[state][event]; ok {
		return next, nil
	}
	return state, fmt.Errorf("illegal transition from %s on %s", state, event)
}
