package inspect

// Mode is the active inspection tool. Modes are mutually exclusive;
// activating one deactivates all others.
type Mode int

const (
	ModeView Mode = iota
	ModeMeasure
	ModeAnnotate
	ModeReference
	ModeCondition
)

// String returns the display name of the mode
func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModeMeasure:
		return "measure"
	case ModeAnnotate:
		return "annotate"
	case ModeReference:
		return "reference"
	case ModeCondition:
		return "condition"
	}
	return "unknown"
}

// PointEdit identifies the measurement point currently being dragged
type PointEdit struct {
	MeasurementID int
	PointIndex    int
}

// ModeMachine is the single arbiter of which tool a raw input event belongs
// to. Exactly one mode is active at a time, and the measure mode carries an
// orthogonal idle/editing sub-state: while a point is being dragged, camera
// orbit input is disabled.
type ModeMachine struct {
	mode Mode
	edit *PointEdit
}

// NewModeMachine starts in view mode, idle
func NewModeMachine() *ModeMachine {
	return &ModeMachine{mode: ModeView}
}

// Mode returns the active tool mode
func (m *ModeMachine) Mode() Mode {
	return m.mode
}

// Is reports whether the given mode is active
func (m *ModeMachine) Is(mode Mode) bool {
	return m.mode == mode
}

// Activate switches to the given mode, deactivating every other tool. Any
// in-progress point edit is abandoned.
func (m *ModeMachine) Activate(mode Mode) {
	if m.mode == mode {
		return
	}
	m.edit = nil
	m.mode = mode
}

// BeginEdit enters the point-dragging sub-state. Only valid in measure mode
// and when not already editing; the rejected cases are logged no-ops.
func (m *ModeMachine) BeginEdit(measurementID, pointIndex int) bool {
	if m.mode != ModeMeasure {
		Logf("point editing requires measure mode, currently %s", m.mode)
		return false
	}
	if m.edit != nil {
		Logf("already editing point %d of measurement %d", m.edit.PointIndex, m.edit.MeasurementID)
		return false
	}
	m.edit = &PointEdit{MeasurementID: measurementID, PointIndex: pointIndex}
	return true
}

// EndEdit leaves the dragging sub-state. Always safe to call: releasing the
// pointer returns to idle even if the drag never moved the point.
func (m *ModeMachine) EndEdit() {
	m.edit = nil
}

// Editing returns the active point edit, if any
func (m *ModeMachine) Editing() (PointEdit, bool) {
	if m.edit == nil {
		return PointEdit{}, false
	}
	return *m.edit, true
}

// CameraEnabled reports whether camera orbit input should be processed.
// Dragging a measurement point locks the camera so the two gestures never
// fight over the same pointer movement.
func (m *ModeMachine) CameraEnabled() bool {
	return m.edit == nil
}

// Reset is the Escape handler: it clears the editing sub-state but keeps the
// active tool. The host decides separately whether a second Escape should
// drop back to view mode.
func (m *ModeMachine) Reset() {
	m.edit = nil
}
