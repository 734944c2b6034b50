package camera

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	askStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	stepStyle  = lipgloss.NewStyle().PaddingLeft(2)
)

// Prompt asks for a camera URL on w and reads one line from r. A read error
// or EOF counts as blank input.
func Prompt(r io.Reader, w io.Writer) string {
	fmt.Fprintln(w, hintStyle.Render("⚠ Paste your IP URL (e.x. http://192.168.0.8:8080)"))
	fmt.Fprint(w, askStyle.Render("📷 Camera URL (leave blank for default webcam): "))

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		fmt.Fprintln(w)
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// PrintSourceChoice tells the user which source is about to be opened
func PrintSourceChoice(w io.Writer, src Source) {
	if src.IsDevice() {
		fmt.Fprintln(w, "👉 Using default webcam...")
		return
	}
	fmt.Fprintf(w, "🔗 Connecting to %s\n", src.Redacted())
}

// PrintOpenFailure prints remediation steps for a source that will not open
func PrintOpenFailure(w io.Writer, suffix string) {
	fmt.Fprintln(w, errorStyle.Render("❌ Could not open video stream. Make sure:"))
	for _, step := range []string{
		"1️⃣ Phone & PC are on same Wi-Fi",
		"2️⃣ Correct IP/Port entered",
		fmt.Sprintf("3️⃣ %s is added at the end", suffix),
	} {
		fmt.Fprintln(w, stepStyle.Render(step))
	}
}

// PrintFrameFailure warns that the stream stopped delivering frames
func PrintFrameFailure(w io.Writer) {
	fmt.Fprintln(w, hintStyle.Render("⚠ Failed to grab frame."))
}
