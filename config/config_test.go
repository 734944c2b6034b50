package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measurecam/controls"
	"measurecam/measure"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{}`)))

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "Object Measurement", viper.GetString("window.name"))
	assert.Equal(t, "", viper.GetString("camera.url"))
	assert.Equal(t, 0, viper.GetInt("camera.device"))
	assert.Equal(t, "/video", viper.GetString("camera.pathSuffix"))
	assert.Equal(t, 0.000866, viper.GetFloat64("calibration.feetPerPixel"))
	assert.Equal(t, "euclidean", viper.GetString("calibration.formula"))
	assert.Equal(t, 15*time.Second, GetStatsInterval())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"window": { "name": "Ruler" },
		"camera": { "url": "http://10.0.0.5:8080", "device": 1, "pathSuffix": "/stream" },
		"calibration": { "feetPerPixel": 0.001, "formula": "legacy" },
		"stats": { "interval": "1m" }
	}`)
	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, "Ruler", GetString("window.name"))
	assert.Equal(t, CameraConfig{URL: "http://10.0.0.5:8080", Device: 1, PathSuffix: "/stream"}, GetCamera())

	calib, err := GetCalibration()
	require.NoError(t, err)
	assert.Equal(t, measure.Calibration{FeetPerPixel: 0.001, Formula: measure.Legacy}, calib)
	assert.Equal(t, time.Minute, GetStatsInterval())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))
	assert.Equal(t, "Object Measurement", GetString("window.name"))
}

func TestLoad_NoConfigDir(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(""))
	assert.Equal(t, "info", GetString("logLevel"))
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(writeConfig(t, `{ "logLevel": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestGetCalibration_Invalid(t *testing.T) {
	t.Cleanup(viper.Reset)
	SetDefaults()

	viper.Set("calibration.feetPerPixel", 0)
	_, err := GetCalibration()
	require.Error(t, err)

	viper.Set("calibration.feetPerPixel", 0.5)
	viper.Set("calibration.formula", "manhattan")
	_, err = GetCalibration()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calibration.formula")
}

func TestGetButtons_Default(t *testing.T) {
	t.Cleanup(viper.Reset)
	SetDefaults()

	bar, err := GetButtons()
	require.NoError(t, err)
	assert.Equal(t, controls.DefaultButtons(), bar.Buttons())
}

func TestGetButtons_Override(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"buttons": [
			{ "label": "quit",  "x1": 0,   "y1": 0, "x2": 50,  "y2": 30 },
			{ "label": "Undo",  "x1": 60,  "y1": 0, "x2": 110, "y2": 30 }
		]
	}`)
	require.NoError(t, Load(dir))

	bar, err := GetButtons()
	require.NoError(t, err)
	require.Len(t, bar.Buttons(), 2)

	btn, ok := bar.Locate(25, 15)
	require.True(t, ok)
	assert.Equal(t, controls.ActionQuit, btn.Action)
	assert.Equal(t, "Quit", btn.Label)

	_, ok = bar.Locate(300, 15)
	assert.False(t, ok)
}

func TestGetButtons_UnknownLabel(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{ "buttons": [ { "label": "Triangle", "x1": 0, "y1": 0, "x2": 10, "y2": 10 } ] }`)))

	_, err := GetButtons()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Triangle")
}
