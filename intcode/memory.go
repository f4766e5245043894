package intcode

// MEMORY_LIMIT is the default ceiling on addressable cells.
const MEMORY_LIMIT = 1 << 24

// Memory is a zero-initialized, auto-growing cell store.
//
// Reads beyond the high-water mark return 0. A write beyond it grows Data to
// cover the address, zero-filling the gap; the backing array grows by
// append, so capacity at least doubles on each reallocation. Memory never
// shrinks.
type Memory struct {
	Limit int64   // Address ceiling; MEMORY_LIMIT if zero.
	Data  []int64 // Cells 0..len(Data)-1.
}

// NewMemory creates a memory holding a copy of the image.
func NewMemory(image Image) (mem *Memory) {
	mem = &Memory{}
	mem.Load(image)
	return
}

// Load replaces the memory contents with a copy of the image.
func (mem *Memory) Load(image Image) {
	mem.Data = append(mem.Data[:0], image...)
}

// Len returns the high-water mark.
func (mem *Memory) Len() int64 {
	return int64(len(mem.Data))
}

func (mem *Memory) limit() int64 {
	if mem.Limit > 0 {
		return mem.Limit
	}
	return MEMORY_LIMIT
}

// Read returns the value at addr.
func (mem *Memory) Read(addr int64) (value int64, err error) {
	if addr < 0 {
		err = ErrNegativeAddress
		return
	}

	if addr < int64(len(mem.Data)) {
		value = mem.Data[addr]
	}

	return
}

// Write stores value at addr, growing the memory if needed.
func (mem *Memory) Write(addr int64, value int64) (err error) {
	if addr < 0 {
		err = ErrNegativeAddress
		return
	}

	if addr >= mem.limit() {
		err = ErrAddressLimit
		return
	}

	if need := addr + 1 - int64(len(mem.Data)); need > 0 {
		mem.Data = append(mem.Data, make([]int64, need)...)
	}

	mem.Data[addr] = value

	return
}
