// file: internals/features/listings/lifecycle/service.go
package lifecycle

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SweepExpired menghapus permanen semua baris expired (deadline < now) di ketiga
// tabel. Tiap tabel dihapus dalam transaksinya sendiri: gagal di satu tabel
// menghentikan sweep (fail-fast), progres tabel sebelumnya tetap tersimpan.
// Idempotent: sweep kedua beruntun menghapus 0 baris.
func SweepExpired(db *gorm.DB, now time.Time) (map[string]int64, int64, error) {
	deleted := make(map[string]int64, len(Collections))
	var total int64

	for _, col := range Collections {
		var n int64
		err := db.Transaction(func(tx *gorm.DB) error {
			res := tx.Scopes(Expired(col.DeadlineCol, now)).Delete(col.NewModel())
			if res.Error != nil {
				return res.Error
			}
			n = res.RowsAffected
			return nil
		})
		if err != nil {
			return nil, 0, fmt.Errorf("sweep %s: %w", col.Name, err)
		}
		deleted[col.Name] = n
		total += n
	}
	return deleted, total, nil
}

// DashboardCounts: jumlah aktif & yang deadline-nya jatuh dalam 7 hari ke depan.
// ExpiringSoon selalu subset dari Active (windownya lebih sempit).
type DashboardCounts struct {
	Active       int64
	ExpiringSoon int64
}

// CountForDashboard menghitung statistik per tabel dengan semantik visibility
// yang sama persis dengan listing (deadline >= now, batas window inklusif).
func CountForDashboard(db *gorm.DB, now time.Time) (map[string]DashboardCounts, error) {
	counts := make(map[string]DashboardCounts, len(Collections))

	for _, col := range Collections {
		var c DashboardCounts
		if err := db.Model(col.NewModel()).
			Scopes(Visible(col.DeadlineCol, now)).
			Count(&c.Active).Error; err != nil {
			return nil, fmt.Errorf("count active %s: %w", col.Name, err)
		}
		if err := db.Model(col.NewModel()).
			Scopes(ExpiringWithin(col.DeadlineCol, now, ExpiringSoonWindow)).
			Count(&c.ExpiringSoon).Error; err != nil {
			return nil, fmt.Errorf("count expiring %s: %w", col.Name, err)
		}
		counts[col.Name] = c
	}
	return counts, nil
}
