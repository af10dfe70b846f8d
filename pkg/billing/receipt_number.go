package billing

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// ReceiptNumber generates a receipt number of the form PREFIX-YYYYMMDD-NNNN
// where NNNN is a random zero-padded suffix in [0, 9999]. The date is taken
// from now as passed; callers hand in shop-local wall time. Uniqueness is not
// checked here; the receipts table's unique constraint surfaces the rare
// collision as a persistence error, to be retried with a fresh number.
func ReceiptNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, now.Format("20060102"), rand.IntN(10000))
}
