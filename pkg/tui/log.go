package tui

import (
	"fmt"
	"strings"

	"github.com/go-drift/inputrange/pkg/errors"
)

// maxLogLines bounds the event log.
const maxLogLines = 200

// eventLog collects the callback and error lines shown under the sliders.
type eventLog struct {
	lines []string
}

func (l *eventLog) addf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if over := len(l.lines) - maxLogLines; over > 0 {
		l.lines = l.lines[over:]
	}
}

func (l *eventLog) String() string {
	return strings.Join(l.lines, "\n")
}

// logHandler reports errors and panics into the event log.
type logHandler struct {
	log *eventLog
}

func (h logHandler) HandleError(err *errors.InputRangeError) {
	if err == nil {
		return
	}
	h.log.addf("error: %s: %v", err.Op, err.Err)
}

func (h logHandler) HandlePanic(err *errors.PanicError) {
	if err == nil {
		return
	}
	h.log.addf("panic: %s: %v", err.Op, err.Value)
}
