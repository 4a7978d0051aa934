//go:build !windows && !linux && !darwin

package notify

import "os"

func notifyFatal(subject, message string) {
	_, _ = os.Stderr.WriteString("FATAL [" + subject + "]: " + message + "\n")
}
