package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwmaint/layoutkit/pkg/types"
)

// ParseDelta parses the signed byte count by which the kernel/app boundary
// moves. A lowercase 0x prefix after the optional sign selects base 16,
// anything else is read as decimal. Positive values grow the application
// side of the boundary.
func ParseDelta(s string) (int64, error) {
	body := s
	negative := false
	switch {
	case strings.HasPrefix(s, "+"):
		body = s[1:]
	case strings.HasPrefix(s, "-"):
		body = s[1:]
		negative = true
	}

	var (
		v   int64
		err error
	)
	if strings.HasPrefix(body, "0x") {
		digits := body[2:]
		if digits == "" || strings.ContainsAny(digits, "+-") {
			return 0, malformedDelta(s, strconv.ErrSyntax)
		}
		v, err = strconv.ParseInt(digits, 16, 64)
	} else {
		if strings.ContainsAny(body, "+-") {
			return 0, malformedDelta(s, strconv.ErrSyntax)
		}
		v, err = strconv.ParseInt(body, 10, 64)
	}
	if err != nil {
		return 0, malformedDelta(s, err)
	}
	if negative {
		v = -v
	}
	return v, nil
}

func malformedDelta(s string, err error) error {
	return &types.Error{
		Kind: types.ErrKindMalformedDelta,
		Msg:  fmt.Sprintf("delta %q is neither decimal nor 0x-prefixed hex", s),
		Err:  err,
	}
}
