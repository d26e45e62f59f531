// Package input maps host key presses to game actions.
//
// Hosts translate their native key codes into Key names, collect one Frame
// per rendered frame and hand it to the game through Apply.
package input

import "snake-game/game/types"

// Key is a host-agnostic key name.
type Key string

const (
	KeyUp    Key = "up"
	KeyRight Key = "right"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeySpace Key = "space"
	KeyEsc   Key = "escape"
)

// Rune returns the Key for a printable character key.
func Rune(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return Key(string(r))
}

type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionRight
	ActionDown
	ActionLeft
	ActionTogglePause
	ActionQuit
)

func (a Action) Direction() types.Direction {
	switch a {
	case ActionUp:
		return types.UP
	case ActionRight:
		return types.RIGHT
	case ActionDown:
		return types.DOWN
	case ActionLeft:
		return types.LEFT
	}
	return types.NONE
}

// Group is one set of movement keys.
type Group struct {
	Name                  string
	Up, Right, Down, Left Key
}

type binding struct {
	key    Key
	action Action
}

// bindings lists the group in the order it is scanned.
func (g Group) bindings() [4]binding {
	return [4]binding{
		{g.Up, ActionUp},
		{g.Right, ActionRight},
		{g.Down, ActionDown},
		{g.Left, ActionLeft},
	}
}

// Keymap binds keys to actions. Movement groups are listed in priority order.
type Keymap struct {
	Groups []Group
	Pause  []Key
	Quit   []Key
}

func DefaultKeymap() Keymap {
	return Keymap{
		Groups: []Group{
			{Name: "arrows", Up: KeyUp, Right: KeyRight, Down: KeyDown, Left: KeyLeft},
			{Name: "wasd", Up: "w", Right: "d", Down: "s", Left: "a"},
			{Name: "vim", Up: "k", Right: "l", Down: "j", Left: "h"},
		},
		Pause: []Key{KeySpace},
		Quit:  []Key{KeyEsc, "q"},
	}
}

// Controller is the part of the game a frame drives.
type Controller interface {
	TogglePause()
	SubmitDirection(d types.Direction)
	Direction() types.Direction
}

// Frame collects the keys pressed during one rendered frame.
type Frame struct {
	keymap  Keymap
	pressed map[Key]bool
}

func NewFrame(km Keymap) *Frame {
	return &Frame{keymap: km, pressed: make(map[Key]bool)}
}

func (f *Frame) Press(k Key) {
	f.pressed[k] = true
}

func (f *Frame) Pressed(k Key) bool {
	return f.pressed[k]
}

// Clear forgets every key so the frame can be reused.
func (f *Frame) Clear() {
	clear(f.pressed)
}

func (f *Frame) any(keys []Key) bool {
	for _, k := range keys {
		if f.pressed[k] {
			return true
		}
	}
	return false
}

func (f *Frame) TogglePause() bool {
	return f.any(f.keymap.Pause)
}

func (f *Frame) Quit() bool {
	return f.any(f.keymap.Quit)
}

// Direction returns the single movement action honoured this frame: the
// first pressed key scanning groups in priority order, and within a group
// up, right, down, left. Keys that would reverse current are passed over
// so they cannot mask a valid turn further down the list.
func (f *Frame) Direction(current types.Direction) types.Direction {
	for _, g := range f.keymap.Groups {
		for _, b := range g.bindings() {
			if b.key == "" || !f.pressed[b.key] {
				continue
			}
			if d := b.action.Direction(); !d.IsOpposite(current) {
				return d
			}
		}
	}
	return types.NONE
}

// Apply feeds the frame to c: pause toggle first, then the direction.
// It reports whether quit was requested.
func (f *Frame) Apply(c Controller) bool {
	if f.TogglePause() {
		c.TogglePause()
	}
	if d := f.Direction(c.Direction()); d != types.NONE {
		c.SubmitDirection(d)
	}
	return f.Quit()
}
