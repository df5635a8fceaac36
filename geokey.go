// Package geokey provides a fixed 6-byte binary key encoding for
// latitude/longitude coordinates, for use with the orb geometry library.
// Keys sort bytewise by combined degree cell, and truncating a key to 2-5
// bytes yields the coarser grid cell containing the coordinate, so key
// prefixes are directly usable as sortable index keys.
package geokey

import (
	"errors"

	"github.com/paulmach/orb"
)

// Common errors returned by this package.
var (
	// ErrLatitudeRange is returned when a latitude outside [-90, 90] is
	// passed to Encode or AppendEncode.
	ErrLatitudeRange = errors.New("geokey: latitude out of range [-90, 90]")
)

const (
	// EncodedLength is the length in bytes of a complete key.
	EncodedLength = 6

	// MinDecodeLength is the shortest key prefix Decode accepts.
	MinDecodeLength = 2
)

// Angles are quantized to 1/16ths of an arcsecond, the finest resolution
// the encoding represents (about 2 meters at the equator).
const (
	unitsPerDegree = 3600 * 16
	latUnits       = 180 * unitsPerDegree // latitude span, shifted so 0 is the south pole
	lonUnits       = 360 * unitsPerDegree // longitude span

	// Latitude degrees never exceed 180, so latDegrees + lonDegrees*181
	// packs both into a unique, order-preserving word in 0..65159.
	degreeMultiplier = 181
)

// EncodePoint encodes p as a 6-byte key. The point is in orb's
// {longitude, latitude} order. ErrLatitudeRange is returned when p.Lat()
// is outside [-90, 90].
func EncodePoint(p orb.Point) ([]byte, error) {
	return Encode(p.Lat(), p.Lon())
}

// DecodePoint decodes a key into an orb.Point. The buffer requirements
// are those of Decode.
func DecodePoint(buf []byte) orb.Point {
	lat, lon := Decode(buf)
	return orb.Point{lon, lat}
}
