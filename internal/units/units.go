// Package units classifies measurement units into families and converts
// between units of the same family via a fixed base unit (ml for volume,
// g for weight, 1 for count).
package units

import (
	"math"

	"mealplanner/internal/normalize"
)

type Family string

const (
	FamilyVolume  Family = "volume"
	FamilyWeight  Family = "weight"
	FamilyCount   Family = "count"
	FamilyUnknown Family = "unknown"
)

type unitDef struct {
	family Family
	toBase float64
}

// conversionTable maps every supported canonical unit spelling to its family
// and base-unit factor. Keys are post-normalization spellings.
var conversionTable = map[string]unitDef{
	// volume (base = ml)
	"ml":     {FamilyVolume, 1},
	"l":      {FamilyVolume, 1000},
	"dl":     {FamilyVolume, 100},
	"tsp":    {FamilyVolume, 4.92892159375},
	"tbsp":   {FamilyVolume, 14.78676478125},
	"fl oz":  {FamilyVolume, 29.5735295625},
	"cup":    {FamilyVolume, 236.5882365},
	"pint":   {FamilyVolume, 473.176473},
	"quart":  {FamilyVolume, 946.352946},
	"gallon": {FamilyVolume, 3785.411784},

	// weight (base = g)
	"mg": {FamilyWeight, 0.001},
	"g":  {FamilyWeight, 1},
	"kg": {FamilyWeight, 1000},
	"oz": {FamilyWeight, 28.349523125},
	"lb": {FamilyWeight, 453.59237},

	// count (base = 1); the empty unit is what count words normalize to
	"": {FamilyCount, 1},
}

// displayPreferences lists, per family, the units a summed quantity may be
// re-expressed in, largest first. A unit is chosen when the summed base value
// meets or exceeds one of that unit, so 710 ml shows as "3 cup" rather than
// "0.19 gallon".
var displayPreferences = map[Family][]string{
	FamilyVolume: {"gallon", "quart", "cup", "tbsp", "tsp", "ml"},
	FamilyWeight: {"lb", "oz", "g"},
}

// BaseAmount is a quantity expressed in its family's base unit.
type BaseAmount struct {
	Value  float64
	Family Family
}

// Merged is the result of successfully combining two quantities.
type Merged struct {
	Amount float64
	Unit   string
}

// Classify returns the family of a unit string, FamilyUnknown if the unit is
// not in the conversion table.
func Classify(unit string) Family {
	if def, ok := conversionTable[normalize.Unit(unit)]; ok {
		return def.family
	}
	return FamilyUnknown
}

// ToBase converts an amount to its family base unit. Returns false for
// unknown units.
func ToBase(amount float64, unit string) (BaseAmount, bool) {
	def, ok := conversionTable[normalize.Unit(unit)]
	if !ok {
		return BaseAmount{}, false
	}
	return BaseAmount{Value: amount * def.toBase, Family: def.family}, true
}

// FromBase re-expresses a base value in the target unit. Returns false for
// unknown units.
func FromBase(baseValue float64, targetUnit string) (float64, bool) {
	def, ok := conversionTable[normalize.Unit(targetUnit)]
	if !ok {
		return 0, false
	}
	return baseValue / def.toBase, true
}

// Compatible reports whether two units can be summed. Both known: same family.
// Both unknown: only identical normalized spellings; unrecognized units of
// different spelling are never silently combined.
func Compatible(u1, u2 string) bool {
	n1, n2 := normalize.Unit(u1), normalize.Unit(u2)
	d1, ok1 := conversionTable[n1]
	d2, ok2 := conversionTable[n2]
	if ok1 && ok2 {
		return d1.family == d2.family
	}
	if !ok1 && !ok2 {
		return n1 == n2
	}
	return false
}

// MergeAmounts combines two (amount, unit) contributions to the same item.
// A nil or zero amount yields the other contribution unchanged. Identical
// normalized spellings sum directly. Compatible units are summed in base
// terms and re-expressed in the best display unit at full precision; rounding
// is a presentation concern and never touches stored amounts. Incompatible
// units return false: the caller keeps both via its additional-amounts
// overflow.
func MergeAmounts(amount1 *float64, unit1 string, amount2 *float64, unit2 string) (Merged, bool) {
	if amount1 == nil || *amount1 == 0 {
		return mergedFrom(amount2, unit2), true
	}
	if amount2 == nil || *amount2 == 0 {
		return Merged{Amount: *amount1, Unit: normalize.Unit(unit1)}, true
	}

	n1, n2 := normalize.Unit(unit1), normalize.Unit(unit2)
	if n1 == n2 {
		return Merged{Amount: *amount1 + *amount2, Unit: n1}, true
	}

	b1, ok1 := ToBase(*amount1, n1)
	b2, ok2 := ToBase(*amount2, n2)
	if !ok1 || !ok2 || b1.Family != b2.Family {
		return Merged{}, false
	}

	total := b1.Value + b2.Value
	unit := bestDisplayUnit(total, b1.Family)
	value, _ := FromBase(total, unit)
	return Merged{Amount: value, Unit: unit}, true
}

func mergedFrom(amount *float64, unit string) Merged {
	m := Merged{Unit: normalize.Unit(unit)}
	if amount != nil {
		m.Amount = *amount
	}
	return m
}

// bestDisplayUnit picks the largest preferred unit whose single-unit base
// value the total meets or exceeds, falling back to the family's smallest.
func bestDisplayUnit(baseValue float64, family Family) string {
	prefs := displayPreferences[family]
	for _, u := range prefs {
		if baseValue >= conversionTable[u].toBase {
			return u
		}
	}
	if len(prefs) > 0 {
		return prefs[len(prefs)-1]
	}
	return ""
}

// RoundForDisplay rounds to recipe-measurement granularity: whole numbers at
// 10 and above, quarters between 1 and 10, eighths below 1.
func RoundForDisplay(value float64) float64 {
	switch {
	case value >= 10:
		return math.Round(value)
	case value >= 1:
		return math.Round(value*4) / 4
	default:
		return math.Round(value*8) / 8
	}
}
