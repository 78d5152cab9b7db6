package component

// DialogTarget makes an entity talkable. When the player is within Radius,
// the dialog system runs the script registered under DialogID to produce the
// current page text.
type DialogTarget struct {
	DialogID string
	Radius   float64
}

var DialogTargetKind = NewKind[DialogTarget]()
