package geokey

// dms is an angle split into degrees, minutes, seconds and 16ths of a
// second. Only non-negative angles are represented: latitudes are shifted
// so 0 is the south pole, and longitudes are wrapped to [0, 360).
type dms struct {
	degrees    int // 0..180 for latitude, 0..359 for longitude
	minutes    int // 0..59
	seconds    int // 0..59
	sixteenths int // 0..15
}

// splitAngle splits units, a count of 1/16ths of an arcsecond, into angle
// components. units must already be reduced to its valid domain.
func splitAngle(units int) dms {
	return dms{
		degrees:    units / unitsPerDegree,
		minutes:    units % unitsPerDegree / (60 * 16),
		seconds:    units % (60 * 16) / 16,
		sixteenths: units % 16,
	}
}
