package tz

import (
	"fmt"
	"time"
)

// Jakarta is the Asia/Jakarta location (WIB, no DST), the default venue zone.
var Jakarta *time.Location

func init() {
	var err error
	Jakarta, err = time.LoadLocation("Asia/Jakarta")
	if err != nil {
		panic("tz: load Asia/Jakarta: " + err.Error())
	}
}

// Load resolves an IANA zone name. An empty name yields Jakarta.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return Jakarta, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}
