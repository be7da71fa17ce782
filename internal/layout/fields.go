// internal/layout/fields.go
package layout

import (
	"bytes"
	"fmt"
	"strings"
)

// CString returns the text in a NUL padded fixed-width field.
func CString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

// FormatMAC renders a 6-byte hardware address as aa:bb:cc:dd:ee:ff.
func FormatMAC(b []byte) string {
	if len(b) < MACSize {
		return ""
	}
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", b[0], b[1], b[2], b[3], b[4], b[5])
}

// ---- DEVICE ----

// CommunicationModels lists the populated modem model names.
func (d *DeviceInfo) CommunicationModels() []string {
	return nonEmpty(CString(d.CommunicationModel1[:]), CString(d.CommunicationModel2[:]))
}

// ImageSensor returns the camera sensor model.
func (d *DeviceInfo) ImageSensor() string { return CString(d.ImageSensorModel[:]) }

// ---- CONFIGURATION ----

// Product returns the product name.
func (c *ConfigurationInfo) Product() string { return CString(c.ProductName[:]) }

// HardwareVersion joins the major and auxiliary hardware versions.
func (c *ConfigurationInfo) HardwareVersion() string {
	major := CString(c.HardwareVersionMajor[:])
	aux := CString(c.HardwareVersionAux[:])
	if aux == "" {
		return major
	}
	return major + "." + aux
}

// Components lists the populated MainDevInfo slots.
func (c *ConfigurationInfo) Components() []MainDevInfo {
	var out []MainDevInfo
	for _, d := range c.DevInfo {
		if CString(d.Name[:]) == "" {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (m MainDevInfo) String() string {
	return fmt.Sprintf("%s: %s %s", CString(m.Name[:]), CString(m.Vendor[:]), CString(m.Model[:]))
}

// ---- PRODUCTLINE ----

// Serial returns the factory serial number.
func (p *ProductlineInfo) Serial() string { return CString(p.SN[:]) }

// WLANAddr returns the WLAN MAC in colon notation.
func (p *ProductlineInfo) WLANAddr() string { return FormatMAC(p.WIFIMAC[:]) }

// BTAddr returns the Bluetooth MAC in colon notation.
func (p *ProductlineInfo) BTAddr() string { return FormatMAC(p.BTMAC[:]) }

// SoftVersions lists the populated modem software versions.
func (p *ProductlineInfo) SoftVersions() []string {
	return nonEmpty(CString(p.ModuleSoftVersion1[:]), CString(p.ModuleSoftVersion2[:]))
}

// AudioVersions lists the populated audio calibration versions.
func (p *ProductlineInfo) AudioVersions() []string {
	return nonEmpty(CString(p.ModuleAudioVersion1[:]), CString(p.ModuleAudioVersion2[:]))
}

func nonEmpty(ss ...string) []string {
	out := ss[:0]
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
