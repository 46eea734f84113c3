// Package tui presents a report window on a plain terminal. It is used
// when no display is available or when the console is requested.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"

	"github.com/ascendara/crashreporter/internal/dispatch"
	"github.com/ascendara/crashreporter/internal/layout"
	"github.com/ascendara/crashreporter/pkg/logger"
)

const defaultWidth = 80

// Actor performs a button action.
type Actor interface {
	Do(layout.Action) dispatch.Outcome
}

// Renderer draws one window and reads choices for it.
type Renderer struct {
	in          *bufio.Scanner
	out         io.Writer
	log         logger.Logger
	width       int
	interactive bool
}

// New returns a renderer reading choices from in and drawing to out. The
// width follows the terminal when out is one.
func New(in io.Reader, out io.Writer, log logger.Logger) *Renderer {
	if log == nil {
		log = logger.NewNopLogger()
	}
	w, tty := detectWidth(out)
	return &Renderer{
		in:          bufio.NewScanner(in),
		out:         out,
		log:         log,
		width:       w,
		interactive: tty,
	}
}

func detectWidth(out io.Writer) (int, bool) {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth, false
	}
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w, true
	}
	return defaultWidth, true
}

// Run draws win and handles choices until an action ends the session or
// input runs out. End of input counts as closing the window.
func (r *Renderer) Run(win layout.Window, act Actor) error {
	r.Render(win)
	buttons := win.Buttons()
	for {
		fmt.Fprint(r.out, "\nSelect an option: ")
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return fmt.Errorf("reading choice: %w", err)
			}
			fmt.Fprintln(r.out)
			r.handle(act, layout.ActionClose)
			return nil
		}
		b, ok := choose(buttons, r.in.Text())
		if !ok {
			fmt.Fprintf(r.out, "Unknown option %q, enter 1-%d or a button name.\n", strings.TrimSpace(r.in.Text()), len(buttons))
			continue
		}
		if r.handle(act, b.Action) {
			return nil
		}
	}
}

// handle runs a and reports whether the session is over.
func (r *Renderer) handle(act Actor, a layout.Action) bool {
	var out dispatch.Outcome
	if a == layout.ActionSubmit {
		out = r.spin("Uploading crash report", func() dispatch.Outcome { return act.Do(a) })
	} else {
		out = act.Do(a)
	}
	if out.Notice != nil {
		r.notice(out.Notice)
		if out.Quit {
			fmt.Fprint(r.out, "Press Enter to exit.")
			r.in.Scan()
			fmt.Fprintln(r.out)
		}
	}
	return out.Quit
}

func (r *Renderer) notice(n *dispatch.Notice) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "["+n.Title+"]")
	fmt.Fprintln(r.out, n.Message)
}

// spin shows a spinner while fn runs. Nothing is drawn off a terminal.
func (r *Renderer) spin(label string, fn func() dispatch.Outcome) dispatch.Outcome {
	if !r.interactive {
		return fn()
	}
	p := mpb.New(mpb.WithOutput(r.out), mpb.WithWidth(16))
	bar := p.New(1,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(
			decor.Name(label, decor.WC{W: len(label) + 1, C: decor.DindentRight}),
		),
		mpb.BarRemoveOnComplete(),
	)
	out := fn()
	bar.SetCurrent(1)
	p.Wait()
	return out
}

func choose(buttons []layout.Widget, input string) (layout.Widget, bool) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(buttons) {
			return buttons[n-1], true
		}
		return layout.Widget{}, false
	}
	for _, b := range buttons {
		if strings.EqualFold(b.Text, input) {
			return b, true
		}
	}
	return layout.Widget{}, false
}

// Render writes win once, top to bottom.
func (r *Renderer) Render(win layout.Window) {
	rule := strings.Repeat("=", r.width)
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, center(win.Title, r.width))
	fmt.Fprintln(r.out, rule)

	var fields [][]string
	flush := func() {
		if len(fields) == 0 {
			return
		}
		r.table(fields)
		fields = nil
	}
	var buttons []string
	for _, w := range win.Widgets {
		if w.Kind != layout.KindField {
			flush()
		}
		switch w.Kind {
		case layout.KindHeading:
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, center(w.Text, r.width))
			fmt.Fprintln(r.out)
		case layout.KindText:
			fmt.Fprintln(r.out, w.Text)
		case layout.KindCard:
			fmt.Fprintln(r.out)
		case layout.KindField:
			fields = append(fields, []string{w.Label, w.Text})
		case layout.KindList:
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, w.Label)
			for _, it := range w.Items {
				fmt.Fprintln(r.out, "  • "+it)
			}
		case layout.KindDetails:
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, w.Label)
			fmt.Fprintln(r.out, strings.Repeat("-", r.width))
			fmt.Fprintln(r.out, w.Text)
			fmt.Fprintln(r.out, strings.Repeat("-", r.width))
		case layout.KindButton:
			buttons = append(buttons, fmt.Sprintf("[%d] %s", len(buttons)+1, w.Text))
		}
	}
	flush()
	if len(buttons) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, strings.Join(buttons, "   "))
	}
}

func (r *Renderer) table(rows [][]string) {
	t := tablewriter.NewWriter(r.out)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetAutoWrapText(false)
	t.SetBorder(false)
	t.SetHeaderLine(false)
	t.SetColumnSeparator("")
	t.SetNoWhiteSpace(true)
	t.SetTablePadding("  ")
	t.AppendBulk(rows)
	t.Render()
}

// center pads s with spaces to width n, measuring display cells.
func center(s string, n int) string {
	sw := runewidth.StringWidth(s)
	if sw >= n {
		return s
	}
	left := (n - sw) / 2
	return strings.Repeat(" ", left) + s
}
