package automaton

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ParseMapRule parses a "MAP..." rule string: a literal 512-entry
// transition truth table for the full 8-cell Moore neighbourhood, base64
// encoded as 64 bytes (512 bits). Bit index self<<8|neighbourBits
// selects the output for a cell in state self with the given pattern of
// live neighbours; a set bit means the successor is Alive.
func ParseMapRule(s string) (Rule, error) {
	if len(s) < 3 || strings.ToUpper(s[:3]) != "MAP" {
		return nil, fmt.Errorf("automaton: rule %q is not a MAP rule", s)
	}
	data, err := decodeMapPayload(s[3:])
	if err != nil {
		return nil, fmt.Errorf("automaton: invalid MAP rule %q: %w", s, err)
	}
	if len(data) < 64 {
		return nil, fmt.Errorf("automaton: MAP rule %q has only %d bytes, need 64", s, len(data))
	}

	var table [2][256]State
	for pattern := 0; pattern < 256; pattern++ {
		for self := 0; self < 2; self++ {
			bitIndex := self<<8 | pattern
			bit := (data[bitIndex/8] >> uint(bitIndex%8)) & 1
			if bit == 1 {
				table[self][pattern] = Alive
			} else {
				table[self][pattern] = Dead
			}
		}
	}
	return newGenericNontotalisticRule(s, maskMoore, table), nil
}

func decodeMapPayload(payload string) ([]byte, error) {
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(payload)
}
