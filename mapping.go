package gamepad

// AxisTarget names the RawState destination of a raw SDL axis.
type AxisTarget int

const (
	AxisLeftX AxisTarget = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger
)

// AxisMapping defines how a raw axis index maps to a RawState field.
type AxisMapping struct {
	Index     int32
	Target    AxisTarget
	IsTrigger bool
	Invert    bool
	// For triggers: raw range. Some devices use -32768..32767, others 0..32767.
	RawMin int16
	RawMax int16
}

// ButtonMapping defines how a raw button index maps to a RawState bit.
type ButtonMapping struct {
	Index int32
	Mask  uint16
}

// DeviceMapping holds the complete mapping for a specific device type.
type DeviceMapping struct {
	Name    string
	Type    DeviceType
	Axes    []AxisMapping
	Buttons []ButtonMapping
	HasHat  bool
}

// invertAxis flips a raw axis reading, saturating at the asymmetric
// int16 minimum.
func invertAxis(v int16) int16 {
	if v == -32768 {
		return 32767
	}
	return -v
}

// scaleTrigger converts a raw trigger reading into the 0..255 byte range
// RawState carries.
func scaleTrigger(raw, rawMin, rawMax int16) uint8 {
	if rawMax == rawMin {
		return 0
	}
	v := float64(int32(raw)-int32(rawMin)) / float64(int32(rawMax)-int32(rawMin)) * TriggerMax
	if v < 0 {
		return 0
	}
	if v > TriggerMax {
		return TriggerMax
	}
	return uint8(v)
}

// Built-in mappings for common controllers. SDL reports sticks with Y
// growing downward; the Invert flag flips those axes into the upward
// convention RawState uses.

var xboxMapping = &DeviceMapping{
	Name: "xbox",
	Type: DeviceGamepad,
	Axes: []AxisMapping{
		{Index: 0, Target: AxisLeftX},
		{Index: 1, Target: AxisLeftY, Invert: true},
		{Index: 2, Target: AxisRightX},
		{Index: 3, Target: AxisRightY, Invert: true},
		{Index: 4, Target: AxisLeftTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Target: AxisRightTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Mask: RawButtonA},
		{Index: 1, Mask: RawButtonB},
		{Index: 2, Mask: RawButtonX},
		{Index: 3, Mask: RawButtonY},
		{Index: 4, Mask: RawButtonLeftShoulder},
		{Index: 5, Mask: RawButtonRightShoulder},
		{Index: 6, Mask: RawButtonBack},
		{Index: 7, Mask: RawButtonStart},
		{Index: 8, Mask: RawButtonLeftThumb},
		{Index: 9, Mask: RawButtonRightThumb},
	},
	HasHat: true,
}

var playstationMapping = &DeviceMapping{
	Name: "playstation",
	Type: DeviceGamepad,
	Axes: []AxisMapping{
		{Index: 0, Target: AxisLeftX},
		{Index: 1, Target: AxisLeftY, Invert: true},
		{Index: 2, Target: AxisRightX},
		{Index: 3, Target: AxisRightY, Invert: true},
		{Index: 4, Target: AxisLeftTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Target: AxisRightTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Mask: RawButtonA},            // Cross
		{Index: 1, Mask: RawButtonB},            // Circle
		{Index: 2, Mask: RawButtonX},            // Square
		{Index: 3, Mask: RawButtonY},            // Triangle
		{Index: 4, Mask: RawButtonBack},         // Share / Create
		{Index: 6, Mask: RawButtonStart},        // Options
		{Index: 7, Mask: RawButtonLeftThumb},
		{Index: 8, Mask: RawButtonRightThumb},
		{Index: 9, Mask: RawButtonLeftShoulder}, // L1
		{Index: 10, Mask: RawButtonRightShoulder}, // R1
	},
	HasHat: true,
}

var switchProMapping = &DeviceMapping{
	Name: "switch_pro",
	Type: DeviceGamepad,
	Axes: []AxisMapping{
		{Index: 0, Target: AxisLeftX},
		{Index: 1, Target: AxisLeftY, Invert: true},
		{Index: 2, Target: AxisRightX},
		{Index: 3, Target: AxisRightY, Invert: true},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Mask: RawButtonA},
		{Index: 1, Mask: RawButtonB},
		{Index: 2, Mask: RawButtonX},
		{Index: 3, Mask: RawButtonY},
		{Index: 4, Mask: RawButtonLeftShoulder},
		{Index: 5, Mask: RawButtonRightShoulder},
		{Index: 6, Mask: RawButtonBack},
		{Index: 7, Mask: RawButtonStart},
		{Index: 8, Mask: RawButtonLeftThumb},
		{Index: 9, Mask: RawButtonRightThumb},
	},
	HasHat: true,
}

var genericMapping = &DeviceMapping{
	Name: "generic",
	Type: DeviceGamepad,
	Axes: []AxisMapping{
		{Index: 0, Target: AxisLeftX},
		{Index: 1, Target: AxisLeftY, Invert: true},
		{Index: 2, Target: AxisRightX},
		{Index: 3, Target: AxisRightY, Invert: true},
		{Index: 4, Target: AxisLeftTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Target: AxisRightTrigger, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Mask: RawButtonA},
		{Index: 1, Mask: RawButtonB},
		{Index: 2, Mask: RawButtonX},
		{Index: 3, Mask: RawButtonY},
		{Index: 4, Mask: RawButtonLeftShoulder},
		{Index: 5, Mask: RawButtonRightShoulder},
		{Index: 6, Mask: RawButtonBack},
		{Index: 7, Mask: RawButtonStart},
		{Index: 8, Mask: RawButtonLeftThumb},
		{Index: 9, Mask: RawButtonRightThumb},
	},
	HasHat: true,
}

// Known vendor/product IDs.
type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

var knownDevices = map[deviceKey]*DeviceMapping{
	// Microsoft Xbox controllers
	{0x045E, 0x028E}: xboxMapping, // Xbox 360
	{0x045E, 0x02FF}: xboxMapping, // Xbox One
	{0x045E, 0x0B12}: xboxMapping, // Xbox Series X|S
	{0x045E, 0x0B13}: xboxMapping, // Xbox Series X|S (wireless)
	// Sony PlayStation controllers
	{0x054C, 0x0CE6}: playstationMapping, // DualSense
	{0x054C, 0x09CC}: playstationMapping, // DualShock 4 v2
	{0x054C, 0x05C4}: playstationMapping, // DualShock 4 v1
	// Nintendo Switch Pro Controller
	{0x057E, 0x2009}: switchProMapping,
}

// GetMapping returns the mapping for a device identified by vendor/product
// ID, falling back to the generic mapping for unrecognized hardware.
func GetMapping(vendorID, productID uint16) *DeviceMapping {
	key := deviceKey{VendorID: vendorID, ProductID: productID}
	if m, ok := knownDevices[key]; ok {
		return m
	}
	return genericMapping
}
