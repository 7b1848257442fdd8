package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Reader turns the backend's raw byte stream into Events. It owns one
// goroutine; events are delivered on a buffered channel and dropped if
// the consumer falls behind.
type Reader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Persistent assembly buffer so partial escape sequences and UTF-8
	// runes survive read boundaries
	buf []byte
}

// NewReader creates a reader over the given backend.
func NewReader(backend Backend) *Reader {
	return &Reader{
		backend: backend,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

// Start begins reading input in a goroutine.
func (r *Reader) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// Stop signals the reader to stop and waits briefly for it to finish.
func (r *Reader) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	<-r.doneCh
}

// Events returns the event channel.
func (r *Reader) Events() <-chan Event {
	return r.eventCh
}

// Post injects a synthetic event, non-blocking.
func (r *Reader) Post(ev Event) {
	r.send(ev)
}

func (r *Reader) readLoop() {
	defer close(r.doneCh)

	defer func() {
		if p := recover(); p != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\ninput reader panic: %v\r\n%s\r\n", p, debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.send(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			// Poll timeout: a lone pending ESC is a real Escape press
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.send(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				r.send(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)

		consumed := r.parse(r.buf)
		if consumed > 0 {
			if consumed >= len(r.buf) {
				r.buf = r.buf[:0]
			} else {
				copy(r.buf, r.buf[consumed:])
				r.buf = r.buf[:len(r.buf)-consumed]
			}
		}
	}
}

// parse emits events for as many complete inputs as possible and
// returns the number of bytes consumed. Incomplete trailing sequences
// are left for the next read.
func (r *Reader) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			r.send(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		if b == 0x1b {
			if i+1 >= n {
				return i // Wait for more data
			}
			consumed, ev := r.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ev.Key != KeyNone || ev.Type != EventKey {
				r.send(ev)
			}
			i += consumed
			continue
		}

		if b < 0x20 {
			r.send(parseControl(b))
			i++
			continue
		}

		if b == 0x7f {
			r.send(Event{Type: EventKey, Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		seqLen := utf8SeqLen(b)
		if seqLen == 0 {
			i++ // Invalid start byte
			continue
		}
		if i+seqLen > n {
			return i // Incomplete rune
		}
		rn, size := decodeRune(data[i:])
		r.send(Event{Type: EventKey, Key: KeyRune, Rune: rn})
		i += size
	}
	return i
}

// parseEscape dispatches on the byte after ESC. Returns 0 consumed when
// the sequence is incomplete.
func (r *Reader) parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch {
	case data[1] == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] < 0x20:
		ev := parseControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev
	case data[1] < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}
	return 2, Event{Type: EventKey, Key: KeyNone}
}

// parseCSI parses ESC [ params final. Keys are decoded from the final
// byte plus the xterm modifier parameter rather than a sequence table.
func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	// SGR mouse: ESC [ < Btn ; Col ; Row M/m
	if data[2] == '<' {
		return parseSGRMouse(data)
	}

	// Linux console function keys: ESC [ [ A-E
	if data[2] == '[' {
		if len(data) < 4 {
			return 0, Event{}
		}
		if data[3] >= 'A' && data[3] <= 'E' {
			return 4, Event{Type: EventKey, Key: KeyF1 + Key(data[3]-'A')}
		}
		return 4, Event{Type: EventKey, Key: KeyNone}
	}

	// Scan parameter bytes up to the final byte
	var params [3]int
	nparams := 0
	cur := 0
	sawParam := false
	i := 2
	for ; i < len(data) && i < 18; i++ {
		b := data[i]
		if b >= '0' && b <= '9' {
			sawParam = true
			cur = cur*10 + int(b-'0')
			continue
		}
		if b == ';' {
			sawParam = true
			if nparams < len(params) {
				params[nparams] = cur
				nparams++
			}
			cur = 0
			continue
		}
		if b >= 0x40 && b <= 0x7e {
			if sawParam && nparams < len(params) {
				params[nparams] = cur
				nparams++
			}
			return i + 1, decodeCSIKey(b, params[:nparams])
		}
		// Malformed byte inside the sequence, swallow it
		return i + 1, Event{Type: EventKey, Key: KeyNone}
	}
	if i >= 18 {
		// Runaway sequence, discard what was scanned
		return i, Event{Type: EventKey, Key: KeyNone}
	}
	return 0, Event{} // Incomplete
}

// decodeCSIKey resolves a CSI final byte and parameters to a key event.
func decodeCSIKey(final byte, params []int) Event {
	switch final {
	case '~':
		if len(params) == 0 {
			return Event{Type: EventKey, Key: KeyNone}
		}
		key, ok := csiTildeKeys[params[0]]
		if !ok {
			return Event{Type: EventKey, Key: KeyNone}
		}
		var mod Modifier
		if len(params) > 1 {
			mod = decodeXtermModifier(params[1])
		}
		return Event{Type: EventKey, Key: key, Modifiers: mod}
	case 'Z':
		return Event{Type: EventKey, Key: KeyBacktab, Modifiers: ModShift}
	}

	key, ok := csiFinalKeys[final]
	if !ok {
		return Event{Type: EventKey, Key: KeyNone}
	}
	var mod Modifier
	if len(params) > 1 {
		mod = decodeXtermModifier(params[1])
	}
	return Event{Type: EventKey, Key: key, Modifiers: mod}
}

// parseSS3 parses ESC O final, including application-mode keypad glyphs.
func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, ok := ss3Keys[data[2]]; ok {
		return 3, Event{Type: EventKey, Key: key}
	}
	if rn, ok := ss3KeypadRunes[data[2]]; ok {
		return 3, Event{Type: EventKey, Key: KeyRune, Rune: rn}
	}
	return 3, Event{Type: EventKey, Key: KeyNone}
}

// parseControl maps C0 control bytes to keys.
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return Event{Type: EventKey, Key: KeyCtrlSpace}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	case 0x1c:
		return Event{Type: EventKey, Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Type: EventKey, Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Type: EventKey, Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Type: EventKey, Key: KeyCtrlUnderscore}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyCtrlA + Key(b-0x01)}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

// parseSGRMouse parses ESC [ < Btn ; Col ; Row M/m sequences.
func parseSGRMouse(data []byte) (int, Event) {
	// Minimum: ESC [ < 0 ; 1 ; 1 M
	if len(data) < 9 {
		return 0, Event{}
	}

	end := 3
	for end < len(data) && end < 32 {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) || (data[end] != 'M' && data[end] != 'm') {
		if end >= 32 {
			return end, Event{Type: EventKey, Key: KeyNone}
		}
		return 0, Event{}
	}

	btn, col, row, ok := parseSGRParams(data[3:end])
	if !ok {
		return end + 1, Event{Type: EventKey, Key: KeyNone}
	}

	// 1-indexed on the wire
	ev := Event{Type: EventMouse, MouseRow: row - 1, MouseCol: col - 1}

	// Bits 0-1: button; bit 5: motion; bit 6: wheel
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isWheel := btn&64 != 0

	switch {
	case isWheel:
		if buttonID == 0 {
			ev.MouseBtn = MouseBtnWheelUp
		} else {
			ev.MouseBtn = MouseBtnWheelDown
		}
		ev.MouseAction = MouseActionPress
	default:
		switch buttonID {
		case 0:
			ev.MouseBtn = MouseBtnLeft
		case 1:
			ev.MouseBtn = MouseBtnMiddle
		case 2:
			ev.MouseBtn = MouseBtnRight
		case 3:
			ev.MouseBtn = MouseBtnNone
		}
		if data[end] == 'm' {
			ev.MouseAction = MouseActionRelease
		} else if isMotion {
			if ev.MouseBtn != MouseBtnNone {
				ev.MouseAction = MouseActionDrag
			} else {
				ev.MouseAction = MouseActionMove
			}
		} else {
			ev.MouseAction = MouseActionPress
		}
	}

	if btn&4 != 0 {
		ev.Modifiers |= ModShift
	}
	if btn&8 != 0 {
		ev.Modifiers |= ModAlt
	}
	if btn&16 != 0 {
		ev.Modifiers |= ModCtrl
	}

	return end + 1, ev
}

// parseSGRParams extracts btn, col, row from "Btn;Col;Row".
func parseSGRParams(data []byte) (btn, col, row int, ok bool) {
	state := 0
	val := 0

	for _, b := range data {
		switch {
		case b == ';':
			switch state {
			case 0:
				btn = val
			case 1:
				col = val
			default:
				return 0, 0, 0, false
			}
			state++
			val = 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			if val > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}

	if state != 2 {
		return 0, 0, 0, false
	}
	row = val
	return btn, col, row, true
}

// send delivers an event without blocking; a full channel drops it.
func (r *Reader) send(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
	}
}

// utf8SeqLen returns the expected UTF-8 sequence length, 0 if invalid.
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

// decodeRune decodes the first UTF-8 rune, returning U+FFFD on malformed
// input so a bad byte cannot wedge the stream.
func decodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return 0, 0
	}

	b := data[0]
	if b < 0x80 {
		return rune(b), 1
	}

	var size int
	var min rune
	var rn rune

	switch {
	case b&0xe0 == 0xc0:
		size, min, rn = 2, 0x80, rune(b&0x1f)
	case b&0xf0 == 0xe0:
		size, min, rn = 3, 0x800, rune(b&0x0f)
	case b&0xf8 == 0xf0:
		size, min, rn = 4, 0x10000, rune(b&0x07)
	default:
		return 0xFFFD, 1
	}

	if len(data) < size {
		return 0xFFFD, 1
	}
	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0xFFFD, 1
		}
		rn = rn<<6 | rune(data[i]&0x3f)
	}
	if rn < min {
		return 0xFFFD, 1 // Overlong encoding
	}
	return rn, size
}
