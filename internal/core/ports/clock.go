package ports

import "time"

// Clock supplies the current time for month-scoped bill of lading numbers.
type Clock interface {
	Now() time.Time
}
