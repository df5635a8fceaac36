package geokey

import (
	"math"

	"github.com/paulmach/orb"
)

// BoundsDecoder decodes keys, rejecting coordinates that fall outside a
// bounding box fixed at construction. The first key byte is a monotonic
// index over the combined degree cell, so most out-of-box keys are
// rejected with a single byte comparison, before any full decode.
//
// A BoundsDecoder is immutable after construction and safe for concurrent
// use.
type BoundsDecoder struct {
	lon1, lon2     float64 // wrapped to [0, 360)
	minLat, maxLat float64
	start1, start2 byte // first key byte of each corner's degree cell
	includePoles   bool
	discontinuous  bool // box crosses the 0/360 seam
}

// NewBoundsDecoder builds a decoder for the box with south-west corner
// (lat1, lon1) and north-east corner (lat2, lon2). Latitudes must satisfy
// lat1 <= lat2; this is not checked. Longitudes may be in any range and
// are wrapped; a wrapped lon1 greater than lon2 denotes a box crossing
// the 0/360 seam.
func NewBoundsDecoder(lat1, lon1, lat2, lon2 float64) *BoundsDecoder {
	lon1 = math.Mod(lon1, 360)
	if lon1 < 0 {
		lon1 += 360
	}
	lon2 = math.Mod(lon2, 360)
	if lon2 < 0 {
		lon2 += 360
	}

	d := &BoundsDecoder{
		lon1:          lon1,
		lon2:          lon2,
		minLat:        lat1,
		maxLat:        lat2,
		discontinuous: lon1 > lon2,
	}
	d.start1 = d.cornerStart(lat1, lon1)
	d.start2 = d.cornerStart(lat2, lon2)
	return d
}

// NewBoundsDecoderFromBound builds a decoder from an orb.Bound, taking
// Min as the south-west corner and Max as the north-east corner. A bound
// whose Min longitude exceeds its Max longitude is accepted and treated
// as crossing the 0/360 seam.
func NewBoundsDecoderFromBound(b orb.Bound) *BoundsDecoder {
	return NewBoundsDecoder(b.Min.Lat(), b.Min.Lon(), b.Max.Lat(), b.Max.Lon())
}

// cornerStart derives the first key byte of a corner's degree cell using
// the same quantization and rounding as AppendEncode, so the byte test
// agrees with the full decode at the box margins. Corners sitting on a
// pole set includePoles.
func (d *BoundsDecoder) cornerStart(lat, lon float64) byte {
	latU := int(math.Round((lat + 90) * unitsPerDegree))
	lonU := int(math.Round(lon * unitsPerDegree))
	if lonU == lonUnits {
		lonU = 0
	}
	if latU == 0 || latU == latUnits {
		d.includePoles = true
	}
	dd := latU/unitsPerDegree + lonU/unitsPerDegree*degreeMultiplier
	return byte(dd >> 8)
}

// Decode decodes a key and reports whether the coordinate lies inside the
// box. The returned point is in orb's {longitude, latitude} order and is
// the zero Point when the coordinate is outside. The buffer requirements
// are those of Decode.
func (d *BoundsDecoder) Decode(buf []byte) (orb.Point, bool) {
	start := buf[0]
	if d.discontinuous {
		// start must be outside (start2, start1); keys at a pole start
		// with 0 regardless of longitude.
		if d.start2 < start && start < d.start1 && !(d.includePoles && start == 0) {
			return orb.Point{}, false
		}
	} else {
		// start must be inside [start1, start2].
		if (start < d.start1 || d.start2 < start) && !(d.includePoles && start == 0) {
			return orb.Point{}, false
		}
	}

	lat, lon := Decode(buf)
	if lat < d.minLat || lat > d.maxLat {
		return orb.Point{}, false
	}
	if lat == -90 || lat == 90 {
		// A pole: longitude is not meaningful (encoded as zero) and the
		// latitude check already passed.
		return orb.Point{lon, lat}, true
	}
	if d.discontinuous {
		if d.lon2 < lon && lon < d.lon1 {
			return orb.Point{}, false
		}
	} else if lon < d.lon1 || d.lon2 < lon {
		return orb.Point{}, false
	}
	return orb.Point{lon, lat}, true
}
