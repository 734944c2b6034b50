package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"measurecam/camera"
	"measurecam/controls"
	"measurecam/measure"
)

// FileName is the optional JSON config file looked up in the config directory
const FileName = "measurecam.json"

// ButtonConfig is one entry of the "buttons" list
type ButtonConfig struct {
	Label string `json:"label" mapstructure:"label"`
	X1    int    `json:"x1" mapstructure:"x1"`
	Y1    int    `json:"y1" mapstructure:"y1"`
	X2    int    `json:"x2" mapstructure:"x2"`
	Y2    int    `json:"y2" mapstructure:"y2"`
}

// CameraConfig controls how the prompt input becomes a video source
type CameraConfig struct {
	URL        string `json:"url" mapstructure:"url"`
	Device     int    `json:"device" mapstructure:"device"`
	PathSuffix string `json:"pathSuffix" mapstructure:"pathSuffix"`
}

// SetDefaults registers every default value
func SetDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.name", "Object Measurement")

	viper.SetDefault("camera.url", "")
	viper.SetDefault("camera.device", 0)
	viper.SetDefault("camera.pathSuffix", camera.DefaultPathSuffix)

	viper.SetDefault("calibration.feetPerPixel", measure.DefaultFeetPerPixel)
	viper.SetDefault("calibration.formula", measure.Euclidean.String())

	viper.SetDefault("stats.interval", "15s")
}

// Load sets defaults and reads measurecam.json from configDir. A missing file
// is not an error; the defaults apply. An empty configDir skips the file.
func Load(configDir string) error {
	SetDefaults()
	if configDir == "" {
		return nil
	}

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetCamera returns the camera settings
func GetCamera() CameraConfig {
	return CameraConfig{
		URL:        viper.GetString("camera.url"),
		Device:     viper.GetInt("camera.device"),
		PathSuffix: viper.GetString("camera.pathSuffix"),
	}
}

// GetCalibration returns the pixel to feet conversion settings
func GetCalibration() (measure.Calibration, error) {
	feetPerPixel := viper.GetFloat64("calibration.feetPerPixel")
	if feetPerPixel <= 0 {
		return measure.Calibration{}, fmt.Errorf("calibration.feetPerPixel must be positive, got %v", feetPerPixel)
	}

	formula, err := measure.ParseFormula(viper.GetString("calibration.formula"))
	if err != nil {
		return measure.Calibration{}, fmt.Errorf("calibration.formula: %w", err)
	}

	return measure.Calibration{FeetPerPixel: feetPerPixel, Formula: formula}, nil
}

// GetButtons returns the button bar. Without a "buttons" list the default
// layout is used.
func GetButtons() (*controls.Bar, error) {
	if !viper.IsSet("buttons") {
		return controls.DefaultBar(), nil
	}

	var entries []ButtonConfig
	if err := viper.UnmarshalKey("buttons", &entries); err != nil {
		return nil, fmt.Errorf("failed to decode buttons: %w", err)
	}

	buttons := make([]controls.Button, 0, len(entries))
	for _, e := range entries {
		action, err := controls.ParseAction(e.Label)
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, controls.Button{
			Label:  action.String(),
			Action: action,
			Box:    controls.Box{X1: e.X1, Y1: e.Y1, X2: e.X2, Y2: e.Y2},
		})
	}

	return controls.NewBar(buttons)
}

// GetStatsInterval returns how often frame statistics are logged
func GetStatsInterval() time.Duration {
	d := viper.GetDuration("stats.interval")
	if d <= 0 {
		return 15 * time.Second
	}
	return d
}
