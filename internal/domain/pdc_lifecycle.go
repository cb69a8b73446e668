package domain

// pdcTransitions is the cheque lifecycle decision table:
// received → deposited/withdrawn/cancelled/replaced,
// deposited → cleared/bounced, bounced → replaced/cancelled.
// Cleared, withdrawn, cancelled, and replaced are terminal.
var pdcTransitions = map[PdcStatus][]PdcStatus{
	PdcStatusReceived:  {PdcStatusDeposited, PdcStatusWithdrawn, PdcStatusCancelled, PdcStatusReplaced},
	PdcStatusDeposited: {PdcStatusCleared, PdcStatusBounced},
	PdcStatusBounced:   {PdcStatusReplaced, PdcStatusCancelled},
	PdcStatusCleared:   {},
	PdcStatusReplaced:  {},
	PdcStatusWithdrawn: {},
	PdcStatusCancelled: {},
}

// CanTransition reports whether a cheque may move from one status to another.
func CanTransition(from, to PdcStatus) bool {
	for _, next := range pdcTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the allowed next statuses for a cheque status.
func NextStatuses(from PdcStatus) []PdcStatus {
	next := pdcTransitions[from]
	out := make([]PdcStatus, len(next))
	copy(out, next)
	return out
}

// TerminalPdcStatus reports whether the status ends the cheque lifecycle.
func TerminalPdcStatus(s PdcStatus) bool {
	return len(pdcTransitions[s]) == 0
}
