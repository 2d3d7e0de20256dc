package tui

// Msg is the sealed interface for all TUI messages. Each message marks the
// settlement of one dispatched operation; the handler reads the outcome from
// the owning state's RequestStatus rather than from the message itself.
type Msg interface {
	sealed()
}

// MsgLoginSettled is sent when a dispatched login completes.
type MsgLoginSettled struct{}

func (MsgLoginSettled) sealed() {}

// MsgFetchSettled is sent when a dispatched fetch completes.
type MsgFetchSettled struct{}

func (MsgFetchSettled) sealed() {}

// MsgCreateSettled is sent when a dispatched create completes.
type MsgCreateSettled struct{}

func (MsgCreateSettled) sealed() {}

// MsgUpdateSettled is sent when a dispatched update completes.
type MsgUpdateSettled struct{}

func (MsgUpdateSettled) sealed() {}

// MsgDeleteSettled is sent when a dispatched delete completes.
type MsgDeleteSettled struct{}

func (MsgDeleteSettled) sealed() {}
