package champion

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	noCooldownText = "No CD"
	allRanksSuffix = " all ranks"
	rankSeparator  = " / "
	rechargePrefix = " <br> recharge: <br> "
)

// Entry is the cooldown of one ability. An empty Cooldown is the
// "no cooldown" sentinel. Recharge is set for ammo based abilities.
type Entry struct {
	Cooldown []float64
	Recharge []float64
}

func (e Entry) NoCooldown() bool {
	return len(e.Cooldown) == 0
}

// String renders the entry in the overlay's text form, e.g.
// "8 all ranks", "10 / 9 / 8" or "No CD <br> recharge: <br> 30 all ranks".
func (e Entry) String() string {
	text := noCooldownText
	if !e.NoCooldown() {
		text = CollapseOrJoin(e.Cooldown)
	}
	if len(e.Recharge) > 0 {
		text += rechargePrefix + CollapseOrJoin(e.Recharge)
	}
	return text
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// CollapseOrJoin collapses per-rank values to one when they are all equal,
// otherwise joins them in rank order.
func CollapseOrJoin(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	if allEqual(values) {
		return formatNumber(values[0]) + allRanksSuffix
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatNumber(v)
	}
	return strings.Join(parts, rankSeparator)
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
