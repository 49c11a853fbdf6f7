//go:build !windows

package notification

import (
	"fmt"
	"log"
	"os"
)

// ShowBlockingError reports a fatal error on stderr and in the log.
func ShowBlockingError(title, message string) {
	log.Printf("%s: %s", title, message)
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
}
