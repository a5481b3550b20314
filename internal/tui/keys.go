package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents an action triggered by a key press.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	ActionToggleHelp
	ActionOpenFinder
	ActionNextViewer
	ActionDatasetViewer
	ActionFocalViewer
	ActionFramePrev
	ActionFrameNext
	ActionFrameFirst
	ActionFrameLast
	ActionTogglePlay
	ActionReset
	ActionZoomIn
	ActionZoomOut
	ActionCycleMethod
	ActionStripLeft
	ActionStripRight
	ActionItemPrev
	ActionItemNext
)

// KeyHandler handles key input and maintains the count prefix buffer.
type KeyHandler struct {
	keyBuffer string
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Handle processes a key message and returns the action with its count.
func (k *KeyHandler) Handle(msg tea.KeyMsg) (KeyAction, int) {
	key := msg.String()

	// Digits build up a count for stepping keys. A lone 1 or 2 with no
	// pending count switches viewer instead.
	if isNumericKey(key) && (k.keyBuffer != "" || (key != "1" && key != "2")) {
		if key == "0" && k.keyBuffer == "" {
			return ActionNone, 0
		}
		k.keyBuffer += key
		return ActionNone, 0
	}

	count := 1
	if k.keyBuffer != "" {
		if n, err := strconv.Atoi(k.keyBuffer); err == nil {
			count = n
		}
	}
	k.keyBuffer = ""

	return k.keyToAction(key), count
}

// KeyBuffer returns the current key buffer.
func (k *KeyHandler) KeyBuffer() string {
	return k.keyBuffer
}

func (k *KeyHandler) keyToAction(key string) KeyAction {
	switch key {
	case "ctrl+c", "q":
		return ActionQuit
	case "?":
		return ActionToggleHelp
	case "/":
		return ActionOpenFinder
	case "tab":
		return ActionNextViewer
	case "1":
		return ActionDatasetViewer
	case "2":
		return ActionFocalViewer
	case "left", "h":
		return ActionFramePrev
	case "right", "l":
		return ActionFrameNext
	case "home", "g":
		return ActionFrameFirst
	case "end", "G":
		return ActionFrameLast
	case " ", "p":
		return ActionTogglePlay
	case "r":
		return ActionReset
	case "+", "=":
		return ActionZoomIn
	case "-", "_":
		return ActionZoomOut
	case "m":
		return ActionCycleMethod
	case "[":
		return ActionStripLeft
	case "]":
		return ActionStripRight
	case "up", "k":
		return ActionItemPrev
	case "down", "j":
		return ActionItemNext
	default:
		return ActionNone
	}
}

func isNumericKey(key string) bool {
	return len(key) == 1 && key >= "0" && key <= "9"
}
