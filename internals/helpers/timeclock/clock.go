// file: internals/helpers/timeclock/clock.go
package timeclock

import "time"

// Clock menyuplai "now" untuk semua cek visibility & window dashboard,
// supaya handler bisa dites dengan waktu tetap.
type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fixed: jam beku untuk test
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
