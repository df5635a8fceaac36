package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log"
	"sort"

	"github.com/paulmach/orb"
	geokey "github.com/tingold/orb-geokey"
)

type City struct {
	Name      string
	Longitude float64
	Latitude  float64
}

var cities = []City{
	{"Tokyo", 139.6917, 35.6895},
	{"New York", -73.9857, 40.7484},
	{"London", -0.1276, 51.5074},
	{"Paris", 2.3522, 48.8566},
	{"Beijing", 116.4074, 39.9042},
	{"Moscow", 37.6173, 55.7558},
	{"São Paulo", -46.6333, -23.5505},
	{"Mumbai", 72.8777, 19.0760},
	{"Sydney", 151.2093, -33.8688},
	{"Berlin", 13.4050, 52.5200},
}

type entry struct {
	key  []byte
	city City
}

func main() {
	// Encode each city as a 6-byte key.
	entries := make([]entry, 0, len(cities))
	for _, city := range cities {
		key, err := geokey.EncodePoint(orb.Point{city.Longitude, city.Latitude})
		if err != nil {
			log.Fatalf("encode %s: %v", city.Name, err)
		}
		entries = append(entries, entry{key, city})
	}

	// Keys sort bytewise; nearby cities share key prefixes.
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].key, entries[j].key) < 0
	})

	fmt.Println("Keys in byte order (2-byte prefix = one-degree cell):")
	for _, e := range entries {
		p := geokey.DecodePoint(e.key)
		cell := geokey.DecodePoint(e.key[:geokey.MinDecodeLength])
		fmt.Printf("  %s %s  %-10s (%.4f, %.4f)  cell (%.0f, %.0f)\n",
			hex.EncodeToString(e.key[:2]), hex.EncodeToString(e.key[2:]),
			e.city.Name, p.Lat(), p.Lon(), cell.Lat(), cell.Lon())
	}

	// Filter the keys through a bounding box covering western Europe.
	europe := geokey.NewBoundsDecoder(35, -10, 60, 30)
	fmt.Println("\nInside western Europe:")
	for _, e := range entries {
		if p, ok := europe.Decode(e.key); ok {
			fmt.Printf("  %-10s (%.4f, %.4f)\n", e.city.Name, p.Lat(), p.Lon())
		}
	}
}
