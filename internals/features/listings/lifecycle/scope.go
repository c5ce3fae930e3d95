// file: internals/features/listings/lifecycle/scope.go
package lifecycle

import (
	"time"

	"gorm.io/gorm"
)

// Window "expiring soon" dashboard: 7 hari wall-clock dari saat query (now + 168 jam).
const ExpiringSoonWindow = 7 * 24 * time.Hour

// Visible membatasi query ke baris yang masih tayang: deadline >= now.
// Deadline tepat sama dengan now tetap tayang (batas inklusif).
// Kolom deadline berasal dari konstanta internal per-entity, bukan input user.
func Visible(deadlineCol string, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(deadlineCol+" >= ?", now)
	}
}

// Expired: kebalikan Visible, dipakai sweep (strictly < now).
func Expired(deadlineCol string, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(deadlineCol+" < ?", now)
	}
}

// ExpiringWithin: deadline di [now, now+window], dua batas inklusif.
func ExpiringWithin(deadlineCol string, now time.Time, window time.Duration) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(deadlineCol+" >= ? AND "+deadlineCol+" <= ?", now, now.Add(window))
	}
}
