package util

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ReportInfoAndErrors shows messages at info level when ok, else at error level.
func ReportInfoAndErrors(errs []string, prompt string, ok bool) {
	if ok {
		reportResultMessages(errs, prompt, log.InfoLevel)
	} else {
		reportResultMessages(errs, prompt, log.ErrorLevel)
	}
}

// ReportWarnAndErrors shows messages at warn level when ok, else at error level.
func ReportWarnAndErrors(errs []string, prompt string, ok bool) {
	if ok {
		reportResultMessages(errs, prompt, log.WarnLevel)
	} else {
		reportResultMessages(errs, prompt, log.ErrorLevel)
	}
}

func reportResultMessages(errs []string, prompt string, level log.Level) {
	var fn func(format string, args ...interface{})

	if len(errs) == 0 || !log.IsLevelEnabled(level) {
		return
	}

	switch level {
	case log.InfoLevel:
		fn = log.Printf
	case log.WarnLevel:
		fn = log.Warnf
	default:
		fn = log.Errorf
	}

	showHorizontalLine()

	for _, err := range errs {
		if err == "" {
			fn("%s", prompt)
			continue
		}
		for _, line := range strings.Split(err, "\n") {
			if prompt == "" {
				fn("%s", line)
			} else if line == "" {
				fn("%s", prompt)
			} else {
				fn("%s\t%s", prompt, line)
			}
		}
	}
}

func showHorizontalLine() {
	fmt.Fprintln(os.Stderr, strings.Repeat("-", 78))
}
