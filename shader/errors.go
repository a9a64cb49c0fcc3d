package shader

import (
	"fmt"
	"strings"
)

// CompileError carries the driver's diagnostic for a stage that failed to
// compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the driver's diagnostic for a program that failed to
// link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// trimLog strips the NUL padding and trailing whitespace GL leaves in info
// logs.
func trimLog(log string) string {
	return strings.TrimRight(log, "\x00 \t\r\n")
}
