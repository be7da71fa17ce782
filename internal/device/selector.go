// internal/device/selector.go
package device

// Block geometry and selector table.
// These values are owned by the parameter device driver and MUST NOT be configurable.

// BlockSize is the unit of I/O exchanged with the parameter device in one read.
const BlockSize = 512

// DefaultPath is the parameter device node.
const DefaultPath = "/dev/yl_params1"

// Selector names a logical block on the parameter device.
// The driver picks the block whose name prefixes the read buffer.
type Selector int

const (
	Device Selector = iota
	Configuration
	Productline
	Dynamic
	Guard
	Cmdline
	Touchscreen0
	Touchscreen1
	Touchscreen2
	Touchscreen3
	Reserve0
	Reserve1
	Project0
	Project1
	Project2
	Project3
	FetchPasswd
	FctDiag
	RCP
	ReturnZero
	VirtOSPasswd

	selectorCount
)

var selectorNames = [selectorCount]string{
	Device:        "DEVICE",
	Configuration: "CONFIGURATION",
	Productline:   "PRODUCTLINE",
	Dynamic:       "DYNAMIC",
	Guard:         "GUARD",
	Cmdline:       "CMDLINE",
	Touchscreen0:  "TOUCHSCREEN0",
	Touchscreen1:  "TOUCHSCREEN1",
	Touchscreen2:  "TOUCHSCREEN2",
	Touchscreen3:  "TOUCHSCREEN3",
	Reserve0:      "RESERVE0",
	Reserve1:      "RESERVE1",
	Project0:      "PROJECT0",
	Project1:      "PROJECT1",
	Project2:      "PROJECT2",
	Project3:      "PROJECT3",
	FetchPasswd:   "FETCH_PASSWD",
	FctDiag:       "FCT_DIAG",
	RCP:           "RCP",
	ReturnZero:    "RETURNZERO",
	VirtOSPasswd:  "VIRTOS_PASSWD",
}

// Valid reports whether s is one of the known selectors.
func (s Selector) Valid() bool {
	return s >= 0 && s < selectorCount
}

// String returns the ASCII selector name, or "" for an unknown selector.
func (s Selector) String() string {
	if !s.Valid() {
		return ""
	}
	return selectorNames[s]
}

// Selectors returns every known selector in device order.
func Selectors() []Selector {
	out := make([]Selector, 0, selectorCount)
	for s := Selector(0); s < selectorCount; s++ {
		out = append(out, s)
	}
	return out
}
