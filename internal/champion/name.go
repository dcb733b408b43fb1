package champion

import (
	"strings"
	"unicode"
)

// aliases maps telemetry champion names to provider keys where they differ.
var aliases = map[string]string{
	"Wukong": "MonkeyKing",
}

// ProviderKey applies the alias table to a telemetry champion name.
func ProviderKey(name string) string {
	if key, ok := aliases[name]; ok {
		return key
	}
	return name
}

// DisplayName turns a provider key back into a readable name:
// "MonkeyKing" -> "Wukong", "AurelionSol" -> "Aurelion Sol".
func DisplayName(key string) string {
	for name, k := range aliases {
		if k == key {
			return name
		}
	}
	var b strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
