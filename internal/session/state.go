package session

// State is the editing mode of a session
type State int

const (
	// Idle: no polygon is being drawn or edited
	Idle State = iota
	// Drawing: a new anonymous polygon is receiving vertices
	Drawing
	// Editing: a stored polygon is being reshaped
	Editing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// EventKind identifies what changed in a session
type EventKind int

const (
	// StateChanged fires after every transition between states
	StateChanged EventKind = iota
	// ShapeChanged fires when the vertices of the active polygon change
	ShapeChanged
	// LabelAdded fires when a polygon is committed under Event.Name
	LabelAdded
	// LabelRemoved fires when Event.Name is removed
	LabelRemoved
	// LabelRenamed fires when Event.OldName becomes Event.Name
	LabelRenamed
	// LabelTagged fires when the tags of Event.Name change
	LabelTagged
	// LabelsReplaced fires when the whole store was cleared or loaded
	LabelsReplaced
	// ImageChanged fires when an image is opened or closed
	ImageChanged
	// Saved fires after a successful save
	Saved
)

func (k EventKind) String() string {
	switch k {
	case StateChanged:
		return "state-changed"
	case ShapeChanged:
		return "shape-changed"
	case LabelAdded:
		return "label-added"
	case LabelRemoved:
		return "label-removed"
	case LabelRenamed:
		return "label-renamed"
	case LabelTagged:
		return "label-tagged"
	case LabelsReplaced:
		return "labels-replaced"
	case ImageChanged:
		return "image-changed"
	case Saved:
		return "saved"
	default:
		return "unknown"
	}
}

// Event describes a change in a session
type Event struct {
	Kind    EventKind
	State   State
	Name    string
	OldName string
}
