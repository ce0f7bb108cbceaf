package zone

// DstZone packs a complete DST description into 32 bits:
//
//	+------------+----------+-------------+
//	| start rule | end rule | base offset |
//	| 12 b       | 12 b     | 8 b         |
//	+------------+----------+-------------+
//
// The base offset is the zone's standard offset; the daylight offset
// is derived from it (see Offset). Packing is lossless: the three
// parts round-trip exactly in either order of extraction.
type DstZone uint32

const (
	dstStartShift = 20
	dstEndShift   = 8
)

// NewDstZone packs a start rule, an end rule and a base offset.
func NewDstZone(start, end TransitionRule, std Offset) DstZone {
	return DstZone(start&ruleMask)<<dstStartShift |
		DstZone(end&ruleMask)<<dstEndShift |
		DstZone(std)
}

// DstZoneFromUint32 reinterprets a raw packed value.
func DstZoneFromUint32(v uint32) DstZone { return DstZone(v) }

// Uint32 returns the raw packed value.
func (z DstZone) Uint32() uint32 { return uint32(z) }

// Start returns the DST start rule.
func (z DstZone) Start() TransitionRule { return TransitionRule(z>>dstStartShift) & ruleMask }

// End returns the DST end rule.
func (z DstZone) End() TransitionRule { return TransitionRule(z>>dstEndShift) & ruleMask }

// Std returns the zone's standard offset.
func (z DstZone) Std() Offset { return Offset(z) }
