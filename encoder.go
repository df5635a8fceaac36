package geokey

import "math"

// Encode encodes a coordinate as a 6-byte key.
//
// Latitude is in degrees from -90 to +90. Longitude is in degrees in any
// range; it is wrapped, and decoding returns longitudes in [0, 360). Both
// angles are rounded to the nearest 1/16th of an arcsecond. A coordinate
// that rounds to either pole encodes a longitude of 0, since longitude is
// not meaningful there.
//
// ErrLatitudeRange is returned when lat is outside [-90, 90]; this is the
// only failure.
func Encode(lat, lon float64) ([]byte, error) {
	return AppendEncode(make([]byte, 0, EncodedLength), lat, lon)
}

// AppendEncode appends the 6-byte key for the coordinate to dst and
// returns the extended slice. On error dst is returned unchanged. See
// Encode.
func AppendEncode(dst []byte, lat, lon float64) ([]byte, error) {
	if lat < -90 || lat > 90 {
		return dst, ErrLatitudeRange
	}

	// Wrap longitude to [0, 360).
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}

	latU := int(math.Round((lat + 90) * unitsPerDegree))
	var lonU int
	if latU == 0 || latU == latUnits {
		// The coordinate rounds to a pole; longitude must not leak into
		// the key.
		lonU = 0
	} else {
		lonU = int(math.Round(lon * unitsPerDegree))
		if lonU == lonUnits {
			lonU = 0
		}
	}

	latDMS := splitAngle(latU)
	lonDMS := splitAngle(lonU)

	// Degrees fill the first two bytes as a big-endian word; each later
	// byte adds roughly one bit of precision for both axes at once, so
	// every prefix is itself a valid, coarser key.
	dd := latDMS.degrees + lonDMS.degrees*degreeMultiplier
	return append(dst,
		byte(dd>>8),
		byte(dd),
		byte((latDMS.minutes/4)<<4|lonDMS.minutes/4),
		byte((latDMS.minutes%4)<<6|(lonDMS.minutes%4)<<4|(latDMS.seconds/15)<<2|lonDMS.seconds/15),
		byte((latDMS.seconds%15)<<4|lonDMS.seconds%15),
		byte(latDMS.sixteenths<<4|lonDMS.sixteenths),
	), nil
}
