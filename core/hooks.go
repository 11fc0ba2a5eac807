package core

// Hooks are the collaborator callbacks the simulation core may invoke
// Every field is optional; nil fields are skipped
type Hooks struct {
	// PlaySound triggers a logical sound at volume in [0, 1]
	PlaySound func(sound SoundType, volume float64)

	// Shake requests camera shake with pixel amplitude for a tick duration
	Shake func(amplitude, duration float64)

	// Transition activates a cross-scene effect (doors, portals)
	Transition func(target string)
}

// Sound invokes PlaySound if present
func (h *Hooks) Sound(sound SoundType, volume float64) {
	if h == nil || h.PlaySound == nil {
		return
	}
	h.PlaySound(sound, volume)
}

// ShakeCamera invokes Shake if present
func (h *Hooks) ShakeCamera(amplitude, duration float64) {
	if h == nil || h.Shake == nil {
		return
	}
	h.Shake(amplitude, duration)
}

// Activate invokes Transition if present
func (h *Hooks) Activate(target string) {
	if h == nil || h.Transition == nil {
		return
	}
	h.Transition(target)
}
