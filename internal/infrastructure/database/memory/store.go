// Package memory holds process-local implementations of the domain
// repositories. They back DB_DRIVER=memory for development and tests and
// lose everything on restart.
package memory

import (
	"time"
)

type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
