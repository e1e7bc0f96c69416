package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt accepts either a JSON number or a numeric string, for
// compatibility with form-encoded frontends that send everything as
// strings. Fractional values are rejected.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))

	if len(s) >= 2 && s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return err
		}
		s = strings.TrimSpace(unquoted)
	}

	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("expected integer, got %v", f)
	}

	*n = FlexInt(int64(f))
	return nil
}

func (n FlexInt) Int64() int64 {
	return int64(n)
}
