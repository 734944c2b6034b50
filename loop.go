package main

import (
	"os"
	"time"

	"measurecam/annotation"
	"measurecam/camera"
	"measurecam/overlay"
	"measurecam/pkg/framestats"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"gocv.io/x/gocv"
)

// OpenCV's EVENT_LBUTTONDOWN
const mouseLeftButtonDown = 1

// 8-bit depth is 0 in the low three bits of a Mat type
const matDepthMask gocv.MatType = 7

// frameSource is satisfied by *gocv.VideoCapture
type frameSource interface {
	Read(m *gocv.Mat) bool
}

// display is satisfied by *gocv.Window
type display interface {
	IMShow(img gocv.Mat) error
	WaitKey(delay int) int
	SetMouseHandler(onMouse gocv.MouseHandlerFunc, userdata interface{})
}

// app is the render loop: one goroutine reads frames, draws the overlay,
// shows the frame and polls input. gocv delivers mouse events inside WaitKey
// on this same goroutine, so the machine needs no locking.
type app struct {
	source   frameSource
	display  display
	machine  *annotation.Machine
	renderer *overlay.Renderer
	stats    *framestats.Stats
	log      zerolog.Logger
	clickLog zerolog.Logger

	skipLogged bool
}

func (a *app) run() {
	a.display.SetMouseHandler(a.onMouse, nil)

	img := gocv.NewMat()
	defer img.Close()
	converted := gocv.NewMat()
	defer converted.Close()

	for !a.machine.QuitRequested() {
		readStart := time.Now()
		if ok := a.source.Read(&img); !ok {
			a.log.Warn().Msg("Failed to grab frame")
			camera.PrintFrameFailure(os.Stdout)
			break
		}
		readTime := time.Since(readStart)

		if frame, ok := a.prepareFrame(&img, &converted); ok {
			drawStart := time.Now()
			a.renderer.Draw(frame, a.machine)
			if err := a.display.IMShow(*frame); err != nil {
				a.log.Warn().Err(err).Msg("Failed to show frame")
			}
			a.stats.UpdateCapture(readTime, time.Since(drawStart))
		} else {
			a.stats.UpdateSkipped()
		}

		if a.stats.Due() {
			a.reportStats()
		}

		// Input is polled on every iteration: mouse callbacks only fire inside WaitKey.
		if a.handleKey(a.display.WaitKey(1)) {
			break
		}
	}

	a.reportStats()
}

// prepareFrame returns a 3-channel 8-bit frame to draw on, converting gray
// and BGRA frames into converted. It reports false for frames it cannot use.
func (a *app) prepareFrame(img, converted *gocv.Mat) (*gocv.Mat, bool) {
	format := camera.FrameUnusable
	if !img.Empty() {
		format = camera.ClassifyFrame(img.Rows(), img.Cols(), img.Channels(), img.Type()&matDepthMask == gocv.MatTypeCV8U)
	}

	var code gocv.ColorConversionCode
	switch format {
	case camera.FrameBGR:
		return img, true
	case camera.FrameGray:
		code = gocv.ColorGrayToBGR
	case camera.FrameBGRA:
		code = gocv.ColorBGRAToBGR
	default:
		a.logSkipped(img, format)
		return nil, false
	}

	if err := gocv.CvtColor(*img, converted, code); err != nil {
		a.log.Warn().Err(err).Str("format", format.String()).Msg("Failed to convert frame")
		return nil, false
	}
	return converted, true
}

// logSkipped warns once per run about frames that cannot be drawn on
func (a *app) logSkipped(img *gocv.Mat, format camera.FrameFormat) {
	if a.skipLogged {
		return
	}
	a.skipLogged = true
	a.log.Warn().
		Int("rows", img.Rows()).
		Int("cols", img.Cols()).
		Int("channels", img.Channels()).
		Str("type", img.Type().String()).
		Str("format", format.String()).
		Msg("Skipping frames the overlay cannot draw on")
}

// onMouse is installed as the window's mouse callback
func (a *app) onMouse(event, x, y, flags int, userdata interface{}) {
	if event != mouseLeftButtonDown {
		return
	}

	out := a.machine.HandleClick(x, y)
	switch out.Kind {
	case annotation.OutcomeAnnotated:
		a.clickLog.Debug().
			Int("x", out.Point.X).
			Int("y", out.Point.Y).
			Bool("segment", out.NewSegment).
			Int("points", len(a.machine.Points())).
			Msg("Point added")
	case annotation.OutcomeShapeSelected:
		a.clickLog.Info().Str("shape", out.Shape.String()).Msg("Shape selected")
	case annotation.OutcomeQuit:
		a.clickLog.Info().Msg("Quit requested")
	default:
		a.clickLog.Debug().Str("button", out.Button).Int("points", len(a.machine.Points())).Msg("Button pressed")
	}
}

// handleKey applies keyboard shortcuts and reports whether the loop should stop
func (a *app) handleKey(key int) bool {
	if key < 0 {
		return false
	}

	switch key & 0xFF {
	case 'q':
		a.log.Info().Msg("Quit key pressed")
		return true
	case 'u':
		a.machine.Undo()
	case 'r':
		a.machine.Reset()
	case 'c':
		a.copySummary()
	}
	return false
}

// copySummary puts the current readings on the system clipboard
func (a *app) copySummary() {
	summary := a.machine.Summary()
	if summary == "" {
		a.log.Info().Msg("Nothing to copy yet")
		return
	}
	if err := clipboard.WriteAll(summary); err != nil {
		a.log.Warn().Err(err).Msg("Failed to copy readings to clipboard")
		return
	}
	a.log.Info().Str("readings", summary).Msg("Copied readings to clipboard")
}

func (a *app) reportStats() {
	snap := a.stats.Take()
	a.log.Info().
		Dur("window", snap.Window).
		Float64("fps", snap.FPS).
		Int64("frames", snap.Frames).
		Int64("skipped", snap.Skipped).
		Dur("avgRead", snap.AvgRead).
		Dur("avgDraw", snap.AvgDraw).
		Int64("totalFrames", snap.TotalFrames).
		Int64("totalSkipped", snap.TotalSkipped).
		Msg("Frame statistics")
}
