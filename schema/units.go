package schema

import (
	"regexp"
	"strings"
)

// Fallback unit names when attribution is impossible.
const (
	UnitOther        = "其他单位"  // no prefix rule matched
	UnitUnrecognized = "未识别单位" // empty or blank operator id
)

// unitPrefixRule maps a numeric prefix of a cleaned operator id to a unit.
type unitPrefixRule struct {
	prefix string
	unit   string
}

// unitPrefixRules is ordered; the first matching rule wins, so the two-digit
// squad prefixes must stay ahead of the single-digit catch-all.
var unitPrefixRules = []unitPrefixRule{
	{prefix: "11", unit: "经侦支队一大队"},
	{prefix: "12", unit: "经侦支队二大队"},
	{prefix: "13", unit: "经侦支队三大队"},
	{prefix: "14", unit: "经侦支队四大队"},
	{prefix: "15", unit: "经侦支队技术支撑组"},
	{prefix: "2", unit: "贵阳市分局联络组"},
}

var nonAlphanumericRe = regexp.MustCompile(`[^0-9A-Za-z]`)

// ResolveUnit derives the organizational unit from an operator identifier.
// An explicit "id@unit" suffix wins; otherwise the first two alphanumeric
// characters are matched against the prefix table.
func ResolveUnit(operatorID string) string {
	normalized := strings.TrimSpace(operatorID)
	if normalized == "" {
		return UnitUnrecognized
	}
	if at := strings.Index(normalized, "@"); at > -1 {
		if unit := strings.TrimSpace(normalized[at+1:]); unit != "" {
			return unit
		}
	}
	cleaned := nonAlphanumericRe.ReplaceAllString(normalized, "")
	prefix := cleaned
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	for _, rule := range unitPrefixRules {
		if strings.HasPrefix(prefix, rule.prefix) {
			return rule.unit
		}
	}
	return UnitOther
}
