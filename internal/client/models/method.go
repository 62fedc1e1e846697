package models

// Method enumerates the supported consumption methods.
type Method string

const (
	MethodVape     Method = "vape"
	MethodSmoke    Method = "smoke"
	MethodEdible   Method = "edible"
	MethodTincture Method = "tincture"
)

// Methods lists every known method in display order.
var Methods = []Method{MethodVape, MethodSmoke, MethodEdible, MethodTincture}

var methodLabels = map[Method]string{
	MethodVape:     "Vape",
	MethodSmoke:    "Flower",
	MethodEdible:   "Edible",
	MethodTincture: "Tincture",
}

// Label returns the human-readable display name for the method.
// Unrecognized methods fall back to the raw string.
func (m Method) Label() string {
	if l, ok := methodLabels[m]; ok {
		return l
	}
	return string(m)
}

// UsesPuffs reports whether the method is dosed as puffs plus potency
// (vape, smoke) rather than an absolute milligram amount.
func (m Method) UsesPuffs() bool {
	return m == MethodVape || m == MethodSmoke
}

// Known reports whether m is one of the supported methods.
func (m Method) Known() bool {
	_, ok := methodLabels[m]
	return ok
}
