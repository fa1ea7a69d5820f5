package ctmsg

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Status is a Client-Library CS_RETCODE. Every int32 value is a valid Status;
// the named constants cover the codes defined by ctpublic.h.
type Status int32

const (
	StatusSucceed       Status = 1
	StatusFail          Status = 0
	StatusMemError      Status = -1
	StatusPending       Status = -2
	StatusQuiet         Status = -3
	StatusBusy          Status = -4
	StatusInterrupt     Status = -5
	StatusBlkHasText    Status = -6
	StatusContinue      Status = -7
	StatusFatal         Status = -8
	StatusRetHAFailover Status = -9
	StatusUnsupported   Status = -10
)

var statusNames = map[Status]string{
	StatusSucceed:       "CS_SUCCEED",
	StatusFail:          "CS_FAIL",
	StatusMemError:      "CS_MEM_ERROR",
	StatusPending:       "CS_PENDING",
	StatusQuiet:         "CS_QUIET",
	StatusBusy:          "CS_BUSY",
	StatusInterrupt:     "CS_INTERRUPT",
	StatusBlkHasText:    "CS_BLK_HAS_TEXT",
	StatusContinue:      "CS_CONTINUE",
	StatusFatal:         "CS_FATAL",
	StatusRetHAFailover: "CS_RET_HAFAILOVER",
	StatusUnsupported:   "CS_UNSUPPORTED",
}

// String returns the CS_ name of the status, or Status(n) for codes without
// one.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Status(" + strconv.FormatInt(int64(s), 10) + ")"
}

// ParseStatus accepts either a CS_ name or a decimal code.
func ParseStatus(s string) (Status, error) {
	for code, name := range statusNames {
		if name == s {
			return code, nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("ctmsg: unknown status %q", s)
	}
	return Status(n), nil
}

// UnmarshalYAML reads a Status written as a CS_ name or a decimal code.
func (s *Status) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("ctmsg: line %d: status must be a scalar", node.Line)
	}
	v, err := ParseStatus(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = v
	return nil
}
