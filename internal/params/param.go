// internal/params/param.go
package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tamzrod/yl-params/internal/layout"
)

// ParamID identifies a parameter served by Store.Get.
// Values are a stable external enumeration.
type ParamID int

const (
	WLANMAC ParamID = iota
	BTMAC
	IMEI0
	IMEI1
)

var paramNames = map[ParamID]string{
	WLANMAC: "wlan_mac",
	BTMAC:   "bt_mac",
	IMEI0:   "imei0",
	IMEI1:   "imei1",
}

// Params returns the supported identifiers in enumeration order.
func Params() []ParamID {
	return []ParamID{WLANMAC, BTMAC, IMEI0, IMEI1}
}

func (id ParamID) String() string {
	if n, ok := paramNames[id]; ok {
		return n
	}
	return fmt.Sprintf("param(%d)", int(id))
}

// Size returns the fixed field size of a supported parameter, or 0.
func (id ParamID) Size() int {
	switch id {
	case WLANMAC, BTMAC:
		return layout.MACSize
	case IMEI0, IMEI1:
		return layout.IMEISize
	}
	return 0
}

// ParseParamID accepts a parameter name (case-insensitive) or its numeric id.
// Unknown numeric ids parse fine; Get rejects them as unsupported.
func ParseParamID(s string) (ParamID, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for id, n := range paramNames {
		if n == key {
			return id, nil
		}
	}

	if n, err := strconv.Atoi(key); err == nil {
		return ParamID(n), nil
	}
	return 0, fmt.Errorf("params: unknown parameter %q", s)
}
