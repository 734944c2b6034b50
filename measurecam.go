package main

import (
	"flag"
	"fmt"
	"os"

	"measurecam/annotation"
	"measurecam/camera"
	"measurecam/config"
	"measurecam/logging"
	"measurecam/measure"
	"measurecam/overlay"
	"measurecam/pkg/framestats"

	"github.com/spf13/viper"
	"gocv.io/x/gocv"
)

var (
	// Command-line flags
	cameraURL      = flag.String("url", "", "Camera stream URL; skips the startup prompt\n\t\tExample: http://192.168.0.8:8080")
	configDir      = flag.String("config", ".", "Directory containing "+config.FileName)
	logLevel       = flag.String("log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	legacyDistance = flag.Bool("legacy-distance", false, "Use the old sqrt(dx*2 + dy*2) distance formula for the distance panel")
	noPrompt       = flag.Bool("no-prompt", false, "Never prompt; use -url/config or the default webcam")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "\n📏 measurecam - click-to-measure over a live camera feed\n")
	fmt.Fprintf(flag.CommandLine.Output(), "\n💡 USAGE EXAMPLES:\n")
	fmt.Fprintf(flag.CommandLine.Output(), "  Default webcam:         ./measurecam -no-prompt\n")
	fmt.Fprintf(flag.CommandLine.Output(), "  Phone IP camera:        ./measurecam -url http://192.168.0.8:8080\n")
	fmt.Fprintf(flag.CommandLine.Output(), "  Old distance readings:  ./measurecam -legacy-distance\n")
	fmt.Fprintf(flag.CommandLine.Output(), "\n🖱️  CONTROLS:\n")
	fmt.Fprintf(flag.CommandLine.Output(), "  Left click on the frame adds a point; buttons: Reset, Undo, Circle, Rectangle, Square, Quit\n")
	fmt.Fprintf(flag.CommandLine.Output(), "  Keys: q quit, u undo, r reset, c copy readings to clipboard\n")
	fmt.Fprintf(flag.CommandLine.Output(), "\n🔧 FLAGS:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

// run wires everything up and returns the process exit code. Resources are
// released by deferred calls before main exits.
func run() int {
	if err := config.Load(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration Error: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		viper.Set("logLevel", *logLevel)
	}
	if *legacyDistance {
		viper.Set("calibration.formula", measure.Legacy.String())
	}
	if *cameraURL != "" {
		viper.Set("camera.url", *cameraURL)
	}

	logger := logging.New(os.Stdout, config.GetString("logLevel"), false)
	log := logging.Component(logger, "MAIN")

	calib, err := config.GetCalibration()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration Error: %v\n", err)
		return 1
	}
	bar, err := config.GetButtons()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration Error: %v\n", err)
		return 1
	}
	log.Debug().
		Float64("feetPerPixel", calib.FeetPerPixel).
		Str("formula", calib.Formula.String()).
		Int("buttons", len(bar.Buttons())).
		Msg("Configuration loaded")

	camCfg := config.GetCamera()
	input := camCfg.URL
	if input == "" && !*noPrompt {
		input = camera.Prompt(os.Stdin, os.Stdout)
	}
	src := camera.Resolve(input, camCfg.Device, camCfg.PathSuffix)
	camera.PrintSourceChoice(os.Stdout, src)

	camLog := logging.Component(logger, "CAMERA")
	camLog.Info().Str("source", src.Redacted()).Msg("Opening video source")

	capture, err := gocv.OpenVideoCapture(src.Target())
	if err != nil {
		camLog.Error().Err(err).Str("source", src.Redacted()).Msg("Error opening video source")
		camera.PrintOpenFailure(os.Stdout, camCfg.PathSuffix)
		return 1
	}
	defer capture.Close()

	if !capture.IsOpened() {
		camLog.Error().Str("source", src.Redacted()).Msg("Video source is not opened")
		camera.PrintOpenFailure(os.Stdout, camCfg.PathSuffix)
		return 1
	}
	camLog.Info().Msg("Video source opened successfully")

	window := gocv.NewWindow(config.GetString("window.name"))
	defer window.Close()

	a := &app{
		source:   capture,
		display:  window,
		machine:  annotation.NewMachine(bar, calib),
		renderer: overlay.NewRenderer(),
		stats:    framestats.New(config.GetStatsInterval()),
		log:      logging.Component(logger, "LOOP"),
		clickLog: logging.Component(logger, "CLICK"),
	}
	a.run()

	log.Info().Msg("Shutting down, releasing video source and window")
	return 0
}
