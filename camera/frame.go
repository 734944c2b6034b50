package camera

// FrameFormat says how a captured frame must be prepared before the overlay
// can draw on it
type FrameFormat int

const (
	// FrameUnusable frames are counted as skipped
	FrameUnusable FrameFormat = iota
	// FrameBGR frames are drawn on as read
	FrameBGR
	// FrameGray frames are expanded to three channels first
	FrameGray
	// FrameBGRA frames have their alpha channel dropped first
	FrameBGRA
)

func (f FrameFormat) String() string {
	switch f {
	case FrameBGR:
		return "bgr"
	case FrameGray:
		return "gray"
	case FrameBGRA:
		return "bgra"
	default:
		return "unusable"
	}
}

// ClassifyFrame maps a frame's shape to the conversion it needs. Only 8-bit
// frames with 1, 3 or 4 channels can be drawn on.
func ClassifyFrame(rows, cols, channels int, eightBit bool) FrameFormat {
	if rows <= 0 || cols <= 0 || !eightBit {
		return FrameUnusable
	}

	switch channels {
	case 3:
		return FrameBGR
	case 1:
		return FrameGray
	case 4:
		return FrameBGRA
	default:
		return FrameUnusable
	}
}
