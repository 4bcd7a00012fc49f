package chip8

// Keypad is the capability interface the CPU uses to read key state. Hosts
// implement this over whatever input backend they use; the CPU never holds
// a back-pointer to its host, only this small interface.
type Keypad interface {
	// KeyIsDown reports whether the key identified by id (0..15) is
	// currently held.
	KeyIsDown(id byte) bool
	// KeyCount returns how many keys are currently held.
	KeyCount() int
	// LastKey returns the most recently pressed key id.
	LastKey() byte
	// KeyTable returns a snapshot-opaque copy of the full 16-key state,
	// used by Snapshot/Restore.
	KeyTable() [16]bool
	// SetKeyTable restores a previously captured key table.
	SetKeyTable(table [16]bool)
}

// BitsetKeypad is a minimal, dependency-free Keypad implementation backed
// by a 16-entry boolean table. Hosts that drive input from a GUI toolkit
// typically wrap this rather than reimplementing the bookkeeping.
type BitsetKeypad struct {
	down    [16]bool
	lastKey byte
}

// NewBitsetKeypad returns a keypad with every key up.
func NewBitsetKeypad() *BitsetKeypad {
	return &BitsetKeypad{}
}

// SetKeyDown marks id as pressed and records it as the last key.
func (k *BitsetKeypad) SetKeyDown(id byte) {
	if id > 0xF {
		return
	}
	k.down[id] = true
	k.lastKey = id
}

// SetKeyUp marks id as released.
func (k *BitsetKeypad) SetKeyUp(id byte) {
	if id > 0xF {
		return
	}
	k.down[id] = false
}

func (k *BitsetKeypad) KeyIsDown(id byte) bool {
	if id > 0xF {
		return false
	}
	return k.down[id]
}

func (k *BitsetKeypad) KeyCount() int {
	n := 0
	for _, d := range k.down {
		if d {
			n++
		}
	}
	return n
}

func (k *BitsetKeypad) LastKey() byte {
	return k.lastKey
}

func (k *BitsetKeypad) KeyTable() [16]bool {
	return k.down
}

func (k *BitsetKeypad) SetKeyTable(table [16]bool) {
	k.down = table
}
