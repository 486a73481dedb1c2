package order

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Type is descriptive order metadata. It does not change any rule.
type Type int

const (
	UnknownType Type = iota
	Regular
	Express
	Refrigerated
	Documents
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:  "Unknown",
		Regular:      "Regular",
		Express:      "Express",
		Refrigerated: "Refrigerated",
		Documents:    "Documents",
	}
}

// Types lists every valid order type.
func Types() []Type {
	return []Type{Regular, Express, Refrigerated, Documents}
}

// ParseType maps a case-insensitive name to its Type.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%q is not a known order type", s))
}

func (t Type) Validate() error {
	if t < Regular || t > Documents {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
