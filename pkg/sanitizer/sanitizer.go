package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// NormalizePhone formats phone as E.164. Numbers without a country code are
// read as belonging to region. Anything that does not parse to a possible
// number becomes "".
func NormalizePhone(phone, region string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil || !phonenumbers.IsPossibleNumber(parsed) {
		return ""
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

func NormalizeAddress(address string) string {
	return Pipeline{TrimAndNormalize}.Apply(address)
}

// SanitizeSlice applies strategy to every value, dropping empties and
// duplicates while keeping the first occurrence order.
func SanitizeSlice(values []string, strategy Strategy) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for _, v := range values {
		s := strategy(v)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

func SanitizeStarters(starters []string) []string {
	return SanitizeSlice(starters, Pipeline{TrimAndNormalize, strings.ToLower}.Apply)
}
