package grimoire

import "time"

// RitualDelay is the default length of the simulated tribute verification.
const RitualDelay = 2 * time.Second

// GateState tracks the contribution gate in front of the sanctum.
type GateState struct {
	HasPaid      bool
	IsPaying     bool
	ModalVisible bool
}

// SummonResult describes what Summon did.
type SummonResult int

const (
	SummonIgnored SummonResult = iota
	SummonOpenedModal
	SummonEnteredChat
)

// Summon asks for the Curator. Once the tribute is paid it enters the
// sanctum directly; before that it opens the ritual modal and leaves the
// view alone.
func (m *Machine) Summon() SummonResult {
	if m.view == Chat {
		return SummonIgnored
	}
	if m.gate.HasPaid {
		m.enterChat()
		return SummonEnteredChat
	}
	m.gate.ModalVisible = true
	return SummonOpenedModal
}

// BeginRitual starts tribute verification. It returns false when the modal
// is closed or a ritual is already underway. The host completes the
// ritual with CompleteRitual after RitualDelay.
func (m *Machine) BeginRitual() bool {
	if !m.gate.ModalVisible || m.gate.IsPaying {
		return false
	}
	m.gate.IsPaying = true
	return true
}

// CompleteRitual marks the tribute paid, closes the modal and opens the
// sanctum. Verification always succeeds.
func (m *Machine) CompleteRitual() {
	m.gate.HasPaid = true
	m.gate.IsPaying = false
	m.gate.ModalVisible = false
	m.enterChat()
}

// DismissModal closes the ritual modal without paying. It is ignored
// while a ritual is underway.
func (m *Machine) DismissModal() bool {
	if !m.gate.ModalVisible || m.gate.IsPaying {
		return false
	}
	m.gate.ModalVisible = false
	return true
}

// Gate returns the gate state.
func (m *Machine) Gate() GateState { return m.gate }

func (m *Machine) enterChat() {
	m.view = Chat
	m.selected = nil
	m.tutorial = nil
	m.loading = false
	m.tutorialToken = 0
}
