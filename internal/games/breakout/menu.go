package breakout

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// MenuPage is one page of the menu.
type MenuPage int

const (
	PageMain MenuPage = iota
	PageSettings
	PageSound
)

// String returns a human-readable page name.
func (p MenuPage) String() string {
	switch p {
	case PageMain:
		return "main"
	case PageSettings:
		return "settings"
	case PageSound:
		return "sound"
	default:
		return "unknown"
	}
}

// MenuItem is a selectable menu entry.
type MenuItem int

const (
	ItemNewGame MenuItem = iota
	ItemSettings
	ItemQuit
	ItemSound
	ItemVolume
	ItemBack
)

// String returns the label shown for the item.
func (i MenuItem) String() string {
	switch i {
	case ItemNewGame:
		return "New Game"
	case ItemSettings:
		return "Settings"
	case ItemQuit:
		return "Quit"
	case ItemSound:
		return "Sound"
	case ItemVolume:
		return "Volume"
	case ItemBack:
		return "Back"
	default:
		return "?"
	}
}

// Items returns the entries of a page, top to bottom.
func (p MenuPage) Items() []MenuItem {
	switch p {
	case PageSettings:
		return []MenuItem{ItemSound, ItemBack}
	case PageSound:
		return []MenuItem{ItemVolume, ItemBack}
	default:
		return []MenuItem{ItemNewGame, ItemSettings, ItemQuit}
	}
}

// parent returns the page Back leads to and the cursor to restore there.
func (p MenuPage) parent() (MenuPage, int) {
	switch p {
	case PageSound:
		return PageSettings, 0 // Sound
	default:
		return PageMain, 1 // Settings
	}
}

func (p MenuPage) title() string {
	switch p {
	case PageSettings:
		return "Settings"
	case PageSound:
		return "Sound"
	default:
		return "B R E A K O U T"
	}
}

// Settings are player preferences that outlive a session.
type Settings struct {
	Volume int
}

// menuCommand is what a menu update asks the game to do.
type menuCommand int

const (
	menuNone menuCommand = iota
	menuRedraw
	menuVolume
	menuNewGame
	menuQuit
)

// Selected returns the item under the cursor.
func (m *MenuScreen) Selected() MenuItem {
	items := m.Page.Items()
	return items[core.Clamp(m.Cursor, 0, len(items)-1)]
}

// update applies one frame of input to the menu.
func (m *MenuScreen) update(in core.InputFrame, s *Settings) menuCommand {
	items := m.Page.Items()

	switch {
	case in.Has(core.ActionUp):
		if m.Cursor > 0 {
			m.Cursor--
			return menuRedraw
		}

	case in.Has(core.ActionDown):
		if m.Cursor < len(items)-1 {
			m.Cursor++
			return menuRedraw
		}

	case in.Has(core.ActionLeft), in.Has(core.ActionRight):
		if m.Selected() != ItemVolume {
			return menuNone
		}
		v := s.Volume
		if in.Has(core.ActionLeft) {
			v--
		} else {
			v++
		}
		v = core.Clamp(v, config.MinVolume, config.MaxVolume)
		if v != s.Volume {
			s.Volume = v
			return menuVolume
		}

	case in.Has(core.ActionConfirm):
		switch m.Selected() {
		case ItemNewGame:
			return menuNewGame
		case ItemQuit:
			return menuQuit
		case ItemSettings:
			m.Page, m.Cursor = PageSettings, 0
			return menuRedraw
		case ItemSound:
			m.Page, m.Cursor = PageSound, 0
			return menuRedraw
		case ItemBack:
			m.Page, m.Cursor = m.Page.parent()
			return menuRedraw
		}

	case in.Has(core.ActionBack):
		if m.Page != PageMain {
			m.Page, m.Cursor = m.Page.parent()
			return menuRedraw
		}
	}

	return menuNone
}

// volumeBar renders the 0..9 scale with the current level bracketed.
func volumeBar(volume int) string {
	parts := make([]string, 0, config.MaxVolume-config.MinVolume+1)
	for v := config.MinVolume; v <= config.MaxVolume; v++ {
		if v == volume {
			parts = append(parts, "["+strconv.Itoa(v)+"]")
		} else {
			parts = append(parts, strconv.Itoa(v))
		}
	}
	return strings.Join(parts, " ")
}

// spawnUI creates the text entities of the current page.
func (m *MenuScreen) spawnUI(w *World, s Settings) {
	m.ui.Spawn(w, Entity{Kind: KindText, Text: TextNode{
		Role:    RoleTitle,
		Content: m.Page.title(),
		Anchor:  AnchorCenter,
		Line:    -5,
		Color:   core.ColorYellow,
	}})

	for i, item := range m.Page.Items() {
		selected := i == m.Cursor
		color := core.ColorDark
		switch {
		case selected:
			color = core.ColorBlue
		case item == ItemQuit:
			color = core.ColorDarker
		}

		node := TextNode{
			Role:     RoleMenuItem,
			Content:  item.String(),
			Anchor:   AnchorCenter,
			Line:     -1 + 2*i,
			Color:    color,
			Selected: selected,
		}
		if item == ItemVolume {
			node.Role = RoleVolume
			node.Label = item.String() + "  "
			node.Content = volumeBar(s.Volume)
			node.ValueColor = core.ColorCoral
		}
		m.ui.Spawn(w, Entity{Kind: KindText, Text: node})
	}

	hint := "up/down move  enter select  esc back"
	if m.Page == PageSound {
		hint = "left/right volume  esc back"
	}
	m.ui.Spawn(w, Entity{Kind: KindText, Text: TextNode{
		Role:    RoleHint,
		Content: hint,
		Anchor:  AnchorCenter,
		Line:    7,
		Color:   core.ColorDarker,
	}})
}
