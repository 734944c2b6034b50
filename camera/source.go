package camera

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultPathSuffix is the stream path served by IP Webcam style phone apps
const DefaultPathSuffix = "/video"

// Source is what the capture should open: either a local device index or a
// stream URL
type Source struct {
	Device int
	URL    string
}

// IsDevice reports whether the source is a local camera
func (s Source) IsDevice() bool {
	return s.URL == ""
}

// Target returns the value to hand to the video capture open call
func (s Source) Target() interface{} {
	if s.IsDevice() {
		return s.Device
	}
	return s.URL
}

func (s Source) String() string {
	if s.IsDevice() {
		return fmt.Sprintf("device %d", s.Device)
	}
	return s.URL
}

// Redacted hides any password embedded in the stream URL, for logging
func (s Source) Redacted() string {
	if s.IsDevice() {
		return s.String()
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return s.URL
	}
	return u.Redacted()
}

// Resolve turns the raw camera input into a source. Blank input selects the
// default device. Anything else has trailing slashes trimmed and suffix
// appended, unless it already ends with suffix.
func Resolve(input string, defaultDevice int, suffix string) Source {
	input = strings.TrimSpace(input)
	if input == "" {
		return Source{Device: defaultDevice}
	}

	if suffix != "" && !strings.HasSuffix(input, suffix) {
		input = strings.TrimRight(input, "/") + suffix
	}
	return Source{URL: input}
}
