//go:build !nogui

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ascendara/crashreporter/internal/icon"
	"github.com/ascendara/crashreporter/internal/layout"
)

const (
	detailsLabelHeight = 24
	cardRadius         = 8
)

// Available reports whether a window can be opened.
func Available() bool {
	return hasDisplay()
}

// Run shows win and blocks until an action or the window manager closes it.
func Run(win layout.Window, act Actor, opts Options) error {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(theme.LightTheme())
	w := newWindow(a, win, act, opts)
	w.CenterOnScreen()
	w.ShowAndRun()
	return nil
}

type renderer struct {
	app fyne.App
	win fyne.Window
	act Actor
}

func newWindow(a fyne.App, win layout.Window, act Actor, opts Options) fyne.Window {
	w := a.NewWindow(win.Title)
	if res := iconResource(opts.Icon); res != nil {
		w.SetIcon(res)
	}
	r := &renderer{app: a, win: w, act: act}
	w.SetContent(r.content(win))
	w.SetFixedSize(true)
	w.Resize(fyne.NewSize(float32(win.Width), float32(win.Height)))
	// closing from the title bar behaves like the close button
	w.SetCloseIntercept(func() { r.perform(layout.ActionClose) })
	return w
}

// iconResource prefers an embedded PNG, which every driver can decode.
func iconResource(ic *icon.Icon) fyne.Resource {
	if ic == nil || len(ic.Data) == 0 {
		return nil
	}
	if png, ok := ic.PNG(); ok {
		return fyne.NewStaticResource("ascendara.png", png)
	}
	return fyne.NewStaticResource(ic.Name, ic.Data)
}

func (r *renderer) perform(a layout.Action) {
	out := r.act.Do(a)
	if out.Notice != nil {
		d := dialog.NewInformation(out.Notice.Title, out.Notice.Message, r.win)
		if out.Quit {
			d.SetOnClosed(r.app.Quit)
		}
		d.Show()
		return
	}
	if out.Quit {
		r.app.Quit()
	}
}

func (r *renderer) content(win layout.Window) *fyne.Container {
	bg := canvas.NewRectangle(rgb(win.Background))
	place(bg, layout.Rect{W: win.Width, H: win.Height})
	objs := []fyne.CanvasObject{bg}
	for _, wd := range win.Widgets {
		objs = append(objs, r.objects(wd)...)
	}
	return container.NewWithoutLayout(objs...)
}

func (r *renderer) objects(wd layout.Widget) []fyne.CanvasObject {
	var obj fyne.CanvasObject
	switch wd.Kind {
	case layout.KindHeading:
		t := text(wd.Text, wd)
		t.Alignment = fyne.TextAlignCenter
		obj = t
	case layout.KindText:
		l := widget.NewLabel(wd.Text)
		l.Wrapping = fyne.TextWrapWord
		l.Alignment = fyne.TextAlignCenter
		obj = l
	case layout.KindCard:
		rect := canvas.NewRectangle(fill(wd))
		rect.CornerRadius = cardRadius
		obj = rect
	case layout.KindField:
		label := text(wd.Label, layout.Widget{Size: wd.Size, Bold: true})
		obj = container.NewHBox(label, text(wd.Text, wd))
	case layout.KindList:
		box := container.NewVBox(text(wd.Label, layout.Widget{Size: wd.Size, Bold: true}))
		for _, it := range wd.Items {
			box.Add(widget.NewLabel("• " + it))
		}
		obj = box
	case layout.KindDetails:
		return details(wd)
	case layout.KindButton:
		action := wd.Action
		obj = widget.NewButton(wd.Text, func() { r.perform(action) })
	default:
		obj = canvas.NewRectangle(color.Transparent)
	}
	place(obj, wd.Bounds)
	return []fyne.CanvasObject{obj}
}

// details stacks the label above a scrolling text box holding the raw
// message.
func details(wd layout.Widget) []fyne.CanvasObject {
	label := text(wd.Label, layout.Widget{Bold: true})
	place(label, layout.Rect{X: wd.Bounds.X, Y: wd.Bounds.Y, W: wd.Bounds.W, H: detailsLabelHeight})

	box := layout.Rect{
		X: wd.Bounds.X,
		Y: wd.Bounds.Y + detailsLabelHeight,
		W: wd.Bounds.W,
		H: wd.Bounds.H - detailsLabelHeight,
	}
	bg := canvas.NewRectangle(fill(wd))
	place(bg, box)

	e := widget.NewMultiLineEntry()
	e.SetText(wd.Text)
	e.TextStyle = fyne.TextStyle{Monospace: wd.Monospace}
	e.Wrapping = fyne.TextWrapWord
	if wd.ReadOnly {
		e.Disable()
	}
	place(e, box)

	return []fyne.CanvasObject{label, bg, e}
}

func text(s string, wd layout.Widget) *canvas.Text {
	t := canvas.NewText(s, toneColor(wd.Tone))
	if wd.Size > 0 {
		t.TextSize = float32(wd.Size)
	}
	t.TextStyle = fyne.TextStyle{Bold: wd.Bold, Monospace: wd.Monospace}
	return t
}

func place(obj fyne.CanvasObject, b layout.Rect) {
	obj.Move(fyne.NewPos(float32(b.X), float32(b.Y)))
	obj.Resize(fyne.NewSize(float32(b.W), float32(b.H)))
}

func toneColor(t layout.Tone) color.Color {
	switch t {
	case layout.ToneError:
		return rgb(layout.ErrorText)
	case layout.ToneAccent:
		return rgb(layout.AccentText)
	default:
		return rgb(layout.NormalText)
	}
}

func fill(wd layout.Widget) color.Color {
	if wd.Fill == nil {
		return color.Transparent
	}
	return rgb(*wd.Fill)
}

func rgb(c layout.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
