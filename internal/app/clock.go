package app

import "time"

// now returns the current UTC time at the precision every supported database keeps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
