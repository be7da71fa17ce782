// internal/export/constants.go
package export

// Parameter Export Block layout constants.
// These values define the protocol and MUST NOT be configurable.
// Byte fields are packed two per register, high byte first.

// ---- SLOT INDICES ----

// SlotHealthCode holds the store health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the last error code (errno for device failures).
const SlotLastErrorCode = 1

// SlotWLANMACStart is the first of 3 slots holding the WLAN MAC.
const SlotWLANMACStart = 2

// SlotBTMACStart is the first of 3 slots holding the Bluetooth MAC.
const SlotBTMACStart = 5

// SlotIMEI0Start is the first of 16 slots holding the first IMEI field.
const SlotIMEI0Start = 8

// SlotIMEI1Start is the first of 16 slots holding the second IMEI field.
const SlotIMEI1Start = 24

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the block.
const SlotDeviceNameStart = 40

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// ---- BLOCK GEOMETRY ----

// SlotsPerBlock is the fixed size of the export block.
const SlotsPerBlock = SlotDeviceNameStart + SlotDeviceNameSlots

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = SlotDeviceNameSlots * 2

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state before the first collection.
const HealthUnknown uint16 = 0

// HealthOK means the store is initialized and every parameter was served.
const HealthOK uint16 = 1

// HealthError means initialization or a lookup failed.
const HealthError uint16 = 2
