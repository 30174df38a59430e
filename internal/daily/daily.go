// internal/daily/daily.go
//
// Deterministic date-keyed target selection for daily self-play mode:
// every run on the same UTC date, with the same salt and word list, solves
// the same target.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Picker selects one word per UTC day. The salt namespaces the sequence so
// independent deployments do not share a schedule.
type Picker struct {
	Salt string
}

// Index returns the word-list index for the given instant's UTC date,
// computed as HMAC-SHA256(salt, YYYY-MM-DD) reduced modulo wordsLen.
func (p Picker) Index(t time.Time, wordsLen int) int {
	if wordsLen <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(p.Salt))
	mac.Write([]byte(dateKey(t)))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)[:8]) % uint64(wordsLen))
}

// dateKey collapses an instant to its UTC calendar date.
func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
