// internal/export/snapshot.go
package export

import "github.com/tamzrod/yl-params/internal/layout"

// Snapshot represents exactly what the exporter is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health        uint16
	LastErrorCode uint16

	WLANMAC [layout.MACSize]byte
	BTMAC   [layout.MACSize]byte
	IMEI0   [layout.IMEISize]byte
	IMEI1   [layout.IMEISize]byte
}

// sameParams reports whether the parameter slots of a and b are identical.
func (a Snapshot) sameParams(b Snapshot) bool {
	return a.WLANMAC == b.WLANMAC &&
		a.BTMAC == b.BTMAC &&
		a.IMEI0 == b.IMEI0 &&
		a.IMEI1 == b.IMEI1
}
