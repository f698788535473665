package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridstorm/storage"
	"github.com/dshills/gridstorm/storage/update"
)

// View renders the store as a sectioned list in the terminal. It is the
// store's observer: diffs touching only item contents redraw just the
// affected sections, anything structural or a full reload redraws
// everything.
type View struct {
	screen tcell.Screen
	store  *storage.Engine
	log    *Logger

	title  string
	status string

	// OnReload is invoked on the event loop when a reload request arrives,
	// keeping engine access serialized.
	OnReload func()

	addCounter int
}

// reloadRequest asks the event loop to re-apply the dataset. Posted by the
// watcher goroutine; handled on the view's goroutine.
type reloadRequest struct {
	tcell.EventTime
}

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true).Reverse(true)
	styleHeader  = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	styleFooter  = tcell.StyleDefault.Dim(true)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// NewView creates and initializes a terminal view over the store.
func NewView(store *storage.Engine, title string, log *Logger) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &View{
		screen: screen,
		store:  store,
		log:    log.WithComponent("view"),
		title:  title,
	}, nil
}

// Close shuts the terminal down. Safe to call once.
func (v *View) Close() {
	v.screen.Fini()
}

// SetTitle updates the top bar text.
func (v *View) SetTitle(title string) {
	v.title = title
}

// PostReload schedules a dataset reload on the event loop. Safe to call
// from other goroutines.
func (v *View) PostReload() {
	_ = v.screen.PostEvent(&reloadRequest{})
}

// ApplyUpdate implements storage.Observer. Updates consisting only of
// in-place item changes redraw just the touched sections; structural
// changes shift every later row, so those redraw the whole grid.
func (v *View) ApplyUpdate(u *update.Update) {
	v.status = fmt.Sprintf("applied %s", u)
	if structural(u) {
		v.renderAll()
		return
	}
	for _, si := range u.TouchedSections() {
		v.renderSection(si)
	}
	v.renderStatus()
	v.screen.Show()
}

// ReloadAll implements storage.Observer.
func (v *View) ReloadAll() {
	v.status = "full reload"
	v.renderAll()
}

// Run drives the event loop until the user quits.
//
// Keys: q/Esc quit, a adds an item to the last section, d deletes the last
// item, m moves the first item of the first populated section to its end,
// r requests a dataset reload.
func (v *View) Run() error {
	v.renderAll()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderAll()
		case *reloadRequest:
			if v.OnReload != nil {
				v.OnReload()
			}
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		case nil:
			return nil
		}
	}
}

func (v *View) handleKey(ev *tcell.EventKey) (quit bool) {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return true
	case ev.Rune() == 'q':
		return true
	case ev.Rune() == 'a':
		v.addCounter++
		section := v.store.SectionCount() - 1
		if section < 0 {
			section = 0
		}
		v.store.AddItem(fmt.Sprintf("added %d", v.addCounter), section)
	case ev.Rune() == 'd':
		v.deleteLastItem()
	case ev.Rune() == 'm':
		v.rotateFirstSection()
	case ev.Rune() == 'r':
		if v.OnReload != nil {
			v.OnReload()
		}
	}
	return false
}

func (v *View) deleteLastItem() {
	for si := v.store.SectionCount() - 1; si >= 0; si-- {
		items, ok := v.store.Items(si)
		if !ok || len(items) == 0 {
			continue
		}
		v.store.RemoveItemsAt([]storage.IndexPath{storage.Path(si, len(items)-1)})
		return
	}
}

func (v *View) rotateFirstSection() {
	for si := 0; si < v.store.SectionCount(); si++ {
		items, ok := v.store.Items(si)
		if !ok || len(items) < 2 {
			continue
		}
		v.store.MoveItem(storage.Path(si, 0), storage.Path(si, len(items)-1))
		return
	}
}

// structural reports whether applying the update changes row positions.
func structural(u *update.Update) bool {
	return len(u.InsertedSectionIndexes()) > 0 ||
		len(u.DeletedSectionIndexes()) > 0 ||
		len(u.InsertedItemPaths()) > 0 ||
		len(u.DeletedItemPaths()) > 0 ||
		len(u.SectionMoves()) > 0 ||
		len(u.ItemMoves()) > 0
}

func (v *View) renderAll() {
	v.screen.Clear()
	v.drawLine(0, styleTitle, " "+v.title)
	for si := 0; si < v.store.SectionCount(); si++ {
		v.renderSection(si)
	}
	v.renderStatus()
	v.screen.Show()
}

// sectionTop returns the screen row where a section starts: the title row
// plus every previous section's rows.
func (v *View) sectionTop(sectionIndex int) int {
	y := 1
	for si := 0; si < sectionIndex; si++ {
		y += v.sectionHeight(si)
	}
	return y
}

// sectionHeight is header + items + footer rows.
func (v *View) sectionHeight(sectionIndex int) int {
	items, ok := v.store.Items(sectionIndex)
	if !ok {
		return 0
	}
	return len(items) + 2
}

func (v *View) renderSection(sectionIndex int) {
	items, ok := v.store.Items(sectionIndex)
	if !ok {
		return
	}
	y := v.sectionTop(sectionIndex)

	header := fmt.Sprintf("Section %d", sectionIndex)
	if h, ok := v.store.HeaderModel(sectionIndex); ok && h != "" {
		header = fmt.Sprint(h)
	}
	v.drawLine(y, styleHeader, header)
	y++

	for _, item := range items {
		v.drawLine(y, styleDefault, "  "+fmt.Sprint(item))
		y++
	}

	footer := ""
	if f, ok := v.store.FooterModel(sectionIndex); ok {
		footer = fmt.Sprint(f)
	}
	v.drawLine(y, styleFooter, "  "+footer)
}

func (v *View) renderStatus() {
	_, height := v.screen.Size()
	line := fmt.Sprintf(" %d sections, %d items | %s | a:add d:del m:move r:reload q:quit",
		v.store.SectionCount(), v.store.TotalNumberOfItems(), v.status)
	v.drawLine(height-1, styleStatus, line)
}

func (v *View) drawLine(y int, style tcell.Style, text string) {
	width, height := v.screen.Size()
	if y < 0 || y >= height {
		return
	}
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}
