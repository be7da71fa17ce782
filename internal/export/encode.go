// internal/export/encode.go
package export

// Encode converts a Snapshot into a full export block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot, deviceName string) []uint16 {
	regs := make([]uint16, SlotsPerBlock)

	regs[SlotHealthCode] = s.Health
	regs[SlotLastErrorCode] = s.LastErrorCode

	packBytes(regs[SlotWLANMACStart:SlotBTMACStart], s.WLANMAC[:])
	packBytes(regs[SlotBTMACStart:SlotIMEI0Start], s.BTMAC[:])
	packBytes(regs[SlotIMEI0Start:SlotIMEI1Start], s.IMEI0[:])
	packBytes(regs[SlotIMEI1Start:SlotDeviceNameStart], s.IMEI1[:])

	copy(regs[SlotDeviceNameStart:], encodeDeviceNameRegs(deviceName))

	return regs
}

// encodeDeviceNameRegs packs up to DeviceNameMaxChars ASCII characters,
// zero padded, into SlotDeviceNameSlots registers.
func encodeDeviceNameRegs(name string) []uint16 {
	if len(name) > DeviceNameMaxChars {
		name = name[:DeviceNameMaxChars]
	}
	regs := make([]uint16, SlotDeviceNameSlots)
	packBytes(regs, []byte(name))
	return regs
}

// packBytes stores b two bytes per register, high byte first.
// An odd trailing byte is padded with zero.
func packBytes(dst []uint16, b []byte) {
	for i := 0; i < len(b) && i/2 < len(dst); i += 2 {
		hi := b[i]
		var lo byte
		if i+1 < len(b) {
			lo = b[i+1]
		}
		dst[i/2] = uint16(hi)<<8 | uint16(lo)
	}
}

// Wire renders registers as the big-endian byte payload of a
// write-multiple-registers request. It is the inverse of packBytes.
func Wire(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
