package recording

import "github.com/gogpu/imagebox"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save transform and clip
	CmdRestore                      // Restore transform and clip
	CmdClipRect                     // Intersect the clip with a rectangle
	CmdTranslate                    // Translate the origin
	CmdScale                        // Scale the axes

	// Drawing commands
	CmdDrawImageRect // Draw part of an image into a rectangle
	CmdDrawImageNine // Draw an image as a nine-patch
)

var commandTypeNames = [...]string{
	CmdSave:          "Save",
	CmdRestore:       "Restore",
	CmdClipRect:      "ClipRect",
	CmdTranslate:     "Translate",
	CmdScale:         "Scale",
	CmdDrawImageRect: "DrawImageRect",
	CmdDrawImageNine: "DrawImageNine",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is not InvalidRef.
func (r ImageRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// SaveCommand saves the transform and clip.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved transform and clip.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// ClipRectCommand intersects the clip with Rect.
type ClipRectCommand struct {
	Rect imagebox.Rect
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// TranslateCommand moves the origin.
type TranslateCommand struct {
	DX, DY float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// ScaleCommand scales the axes.
type ScaleCommand struct {
	SX, SY float64
}

// Type implements Command.
func (ScaleCommand) Type() CommandType { return CmdScale }

// DrawImageRectCommand draws the Src region of an image into Dst.
type DrawImageRectCommand struct {
	// Image references the image in the resource pool.
	Image ImageRef
	Src   imagebox.Rect
	Dst   imagebox.Rect
	// Paint is a copy of the paint at record time, or nil.
	Paint *imagebox.Paint
}

// Type implements Command.
func (DrawImageRectCommand) Type() CommandType { return CmdDrawImageRect }

// DrawImageNineCommand draws an image as a nine-patch.
type DrawImageNineCommand struct {
	// Image references the image in the resource pool.
	Image  ImageRef
	Center imagebox.Rect
	Dst    imagebox.Rect
	// Paint is a copy of the paint at record time, or nil.
	Paint *imagebox.Paint
}

// Type implements Command.
func (DrawImageNineCommand) Type() CommandType { return CmdDrawImageNine }
