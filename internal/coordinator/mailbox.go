package coordinator

// Mailbox is the UI-to-coordinator command channel: bounded at one slot and
// deliberately lossy. A command posted while the previous one is still
// waiting is dropped so the render loop never stalls on the backend.
type Mailbox struct {
	ch chan Command
}

func NewMailbox() *Mailbox {
	return &Mailbox{ch: make(chan Command, 1)}
}

// Post delivers cmd unless the slot is occupied. Returns whether the command
// was accepted.
func (m *Mailbox) Post(cmd Command) bool {
	select {
	case m.ch <- cmd:
		return true
	default:
		return false
	}
}

// C is the receive side, consumed by the coordinator.
func (m *Mailbox) C() <-chan Command {
	return m.ch
}
