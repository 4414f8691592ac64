// Package tui renders the maze in a terminal with ANSI colors.
package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"mazelott/pkg/engine/input"
	"mazelott/pkg/engine/terminal"
	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/hints"
	"mazelott/pkg/game/overworld"
	"mazelott/pkg/game/renderer"
	"mazelott/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// Lines needed outside the map: title, status, advisory, controls,
	// messages pane and prompt.
	ViewportTopMargin  = 16
	ViewportSideMargin = 4
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out  io.Writer
	keys *input.KeyReader

	colorWall          color.Style
	colorPath          color.Style
	colorVisited       color.Style
	colorRoute         color.Style
	colorPlayer        color.Style
	colorStart         color.Style
	colorExit          color.Style
	colorTreasure      color.Style
	colorTreasureFound color.Style
	colorWaypoint      color.Style
	colorAdvisory      color.Style
	colorSubtle        color.Style
	colorAction        color.Style
}

// New creates a TUI renderer on stdin/stdout
func New() *TUIRenderer {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a TUI renderer reading keys from in and drawing to out
func NewWithIO(in io.Reader, out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out, keys: input.NewKeyReader(in)}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorPath = color.Style{color.FgDefault}
	t.colorVisited = color.Style{color.FgBlue}
	t.colorRoute = color.Style{color.FgCyan, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorStart = color.Style{color.FgGreen}
	t.colorExit = color.Style{color.FgRed, color.OpBold}
	t.colorTreasure = color.Style{color.FgYellow, color.OpBold}
	t.colorTreasureFound = color.Style{color.FgYellow}
	t.colorWaypoint = color.Style{color.FgMagenta, color.OpBold}
	t.colorAdvisory = color.Style{color.FgYellow, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.out != os.Stdout {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	_ = c.Run()
}

// GetInput reads one key press in raw mode and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	if input.IsInteractive() {
		if restore, err := input.EnterRawMode(); err == nil {
			defer restore()
		}
	}
	raw, err := t.keys.ReadRaw()
	if err != nil {
		// closed stdin ends the session
		return input.Intent{Action: input.ActionQuit}
	}
	return input.MapToIntent(input.NewDebouncedInput(raw))
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StylePath:
		return t.colorPath.Sprint(text)
	case renderer.StyleVisited:
		return t.colorVisited.Sprint(text)
	case renderer.StyleRoute:
		return t.colorRoute.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleStart:
		return t.colorStart.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleTreasure:
		return t.colorTreasure.Sprint(text)
	case renderer.StyleTreasureFound:
		return t.colorTreasureFound.Sprint(text)
	case renderer.StyleWaypoint:
		return t.colorWaypoint.Sprint(text)
	case renderer.StyleAdvisory:
		return t.colorAdvisory.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the map window (rows, cols) that fits the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = max(termWidth-ViewportSideMargin*2, ViewportMinCols)
	rows = max(termHeight-ViewportTopMargin, ViewportMinRows)

	// Keep both odd so the player can sit in the middle
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	return rows, cols
}

// RenderFrame renders a complete maze frame
func (t *TUIRenderer) RenderFrame(s state.Snapshot) {
	fmt.Fprint(t.out, t.colorAction.Sprintf("Maze'Lott %dx%d", s.Width, s.Height)+"\n\n")

	rows, cols := t.GetViewportSize()
	t.printMap(s, rows, cols)

	t.printStatusBar(s)
	t.printAdvisory(s)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(hints.Text(hints.LabelControls)))
	t.printMessagesPane(s.Messages)

	fmt.Fprint(t.out, "\n> ")
}

// printMap prints the part of the grid visible in a rows×cols window
func (t *TUIRenderer) printMap(s state.Snapshot, rows, cols int) {
	if s.Width == 0 {
		return
	}
	visited, route := renderer.Lookups(s)
	startX, startY := renderer.Viewport(s.Width, s.Height, rows, cols, s.Player)

	var sb strings.Builder
	for y := startY; y < min(startY+rows, s.Height); y++ {
		for x := startX; x < min(startX+cols, s.Width); x++ {
			style := renderer.CellStyle(s, world.Pos(x, y), visited, route)
			sb.WriteString(t.StyleText(renderer.Icon(style), style))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(t.out, sb.String())
	fmt.Fprintln(t.out)
}

// printStatusBar prints position, counters and treasure/win status on one line
func (t *TUIRenderer) printStatusBar(s state.Snapshot) {
	fmt.Fprintln(t.out, strings.Join(renderer.StatusLines(s), " | "))
	if s.LastHint != "" {
		fmt.Fprintln(t.out, t.colorWaypoint.Sprint(renderer.IconWaypoint+" "+s.LastHint))
	}
}

// printAdvisory prints the transient advisory line, if one is showing
func (t *TUIRenderer) printAdvisory(s state.Snapshot) {
	if s.Advisory == "" {
		fmt.Fprintln(t.out)
		return
	}
	fmt.Fprintln(t.out, t.colorAdvisory.Sprint(">> "+s.Advisory+" <<"))
}

// printMessagesPane prints the recent message log
func (t *TUIRenderer) printMessagesPane(messages []string) {
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", 30)))
	for _, msg := range messages {
		fmt.Fprintln(t.out, " "+msg)
	}
}

// RenderOverworld renders the kingdom map as a numbered list of markers
func (t *TUIRenderer) RenderOverworld(v renderer.OverworldView) {
	fmt.Fprint(t.out, t.colorAction.Sprint(overworld.Home)+"\n\n")

	for i, marker := range v.Markers {
		line := fmt.Sprintf("%d. %s %s", i+1, renderer.IconMarker, marker.Name)
		if marker.Visited {
			fmt.Fprintln(t.out, t.colorSubtle.Sprint(line+" ✓"))
		} else {
			fmt.Fprintln(t.out, t.colorWaypoint.Sprint(line))
		}
	}
	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "%s: %d/%d\n", hints.Text(hints.LabelWaypoints), v.Visited, len(v.Markers))

	if v.EntranceOpen {
		fmt.Fprintln(t.out, t.colorExit.Sprint(renderer.IconEntrance+" "+overworld.Entrance.Name+" [enter]"))
	}
	t.printMessagesPane(v.Messages)
	fmt.Fprint(t.out, "\n> ")
}
