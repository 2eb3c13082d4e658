// file: internals/features/users/auth/scheduler/session_cleanup_scheduler.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"paperbank_backend/internals/features/users/auth/session"
)

func StartSessionCleanupScheduler(store *session.Store) {
	go func() {
		// Interval dari env (default: 1 jam)
		intervalMinutes := 60
		if val := os.Getenv("SESSION_CLEANUP_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMinutes = parsed
			}
		}

		for {
			time.Sleep(time.Duration(intervalMinutes) * time.Minute)

			if removed := store.PurgeExpired(); removed > 0 {
				log.Printf("[CLEANUP] %d sesi admin kadaluarsa dihapus", removed)
			}
		}
	}()
}
