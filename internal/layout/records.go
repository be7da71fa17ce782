// internal/layout/records.go
package layout

import (
	"unsafe"

	"github.com/tamzrod/yl-params/internal/device"
)

// On-device record layouts.
// Every field is a byte or byte array so Go adds no alignment padding;
// offsets follow declaration order and each record fills one block exactly.

// DeviceInfo is the DEVICE block.
type DeviceInfo struct {
	SyncByte            [16]byte
	ParamVer            [2]byte
	Date                [6]byte
	CommunicationModel1 [16]byte
	CommunicationModel2 [16]byte
	ImageSensorModel    [16]byte
	SafeboxKey          [128]byte
	_                   [128]byte
	Sim1Capacity        [2]byte
	Sim2Capacity        [2]byte
	Sim3Capacity        [2]byte
	NetCarrier          uint8
	SimSlots            uint8
	_                   [176]byte
}

// MainDevInfo describes one component fitted to the board.
type MainDevInfo struct {
	Name   [8]byte
	Vendor [16]byte
	Model  [16]byte
}

// MainDevSlots is the fixed number of MainDevInfo entries in ConfigurationInfo.
const MainDevSlots = 11

// ConfigurationInfo is the CONFIGURATION block.
type ConfigurationInfo struct {
	SyncByte             [16]byte
	ProductName          [16]byte
	HardwareVersionMajor [6]byte
	HardwareVersionAux   [6]byte
	HardwareRFNV         [6]byte
	DevInfo              [MainDevSlots]MainDevInfo
	_                    [22]byte
}

// ProductlineInfo is the PRODUCTLINE block written at the factory.
type ProductlineInfo struct {
	SyncByte                  [16]byte
	SN                        [16]byte
	IMEI1                     [32]byte
	IMEI2                     [32]byte
	ModuleCalStatus1          uint8
	ModuleCalStatus2          uint8
	ModuleRFTestStatus1       uint8
	ModuleRFTestStatus2       uint8
	ModuleCouplingTestStatus1 uint8
	ModuleCouplingTestStatus2 uint8
	DMTag                     uint8
	CameraCal                 uint8
	RPTag                     uint8
	BatteryTest               uint8
	ModuleSoftVersion1        [48]byte
	ModuleSoftVersion2        [48]byte
	ModuleAudioVersion1       [48]byte
	ModuleAudioVersion2       [48]byte
	FuseBurnStatus            uint8
	MiscStatus                [5]byte
	LightProxInfo             [8]byte
	AccInfo                   [8]byte
	PressInfo                 [8]byte
	SensorReserved1           [8]byte
	SensorReserved2           [8]byte
	SensorReserved3           [8]byte
	DSDSIMEI                  [32]byte
	WIFIMAC                   [6]byte
	BTMAC                     [6]byte
	_                         [116]byte
}

// Field sizes served by parameter lookups.
const (
	MACSize  = 6
	IMEISize = 32
)

// Compile-time size checks: a negative array length fails the build
// if any record drifts from the block size in either direction.
var (
	_ [device.BlockSize - unsafe.Sizeof(DeviceInfo{})]struct{}
	_ [unsafe.Sizeof(DeviceInfo{}) - device.BlockSize]struct{}

	_ [device.BlockSize - unsafe.Sizeof(ConfigurationInfo{})]struct{}
	_ [unsafe.Sizeof(ConfigurationInfo{}) - device.BlockSize]struct{}

	_ [device.BlockSize - unsafe.Sizeof(ProductlineInfo{})]struct{}
	_ [unsafe.Sizeof(ProductlineInfo{}) - device.BlockSize]struct{}
)
