package geokey

// Decode decodes a key into a latitude and longitude in degrees. The
// longitude is in [0, 360).
//
// The buffer must be at least MinDecodeLength bytes; this precondition is
// not checked. Bytes past the sixth are ignored, and a buffer shorter
// than six bytes decodes as the coarser grid cell its prefix identifies,
// with the omitted low-precision fields taken as zero. Decoding never
// fails: arbitrary byte values are accepted, and a buffer that was not
// produced by Encode can decode to a latitude or longitude outside the
// usual ranges.
func Decode(buf []byte) (lat, lon float64) {
	dd := int(buf[0])<<8 | int(buf[1])
	lat = float64(dd % degreeMultiplier)
	lon = float64(dd / degreeMultiplier)

	if len(buf) > 2 {
		latM := float64(buf[2]>>4) * 4
		lonM := float64(buf[2]&0xf) * 4

		if len(buf) > 3 {
			latM += float64((buf[3]>>6)&3)
			lonM += float64((buf[3]>>4)&3)
			latS := float64((buf[3]>>2)&3) * 15
			lonS := float64(buf[3]&3) * 15

			if len(buf) > 4 {
				latS += float64(buf[4] >> 4)
				lonS += float64(buf[4] & 0xf)

				if len(buf) > 5 {
					latS += float64(buf[5]>>4) / 16
					lonS += float64(buf[5]&0xf) / 16
				}
			}

			latM += latS / 60
			lonM += lonS / 60
		}

		lat += latM / 60
		lon += lonM / 60
	}

	return lat - 90, lon
}
