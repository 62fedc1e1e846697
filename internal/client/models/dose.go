package models

// Dose is the tagged dose variant: each method carries only the fields
// relevant to it. PuffDose belongs to vape/smoke, AmountDose to
// edible/tincture.
type Dose interface {
	isDose()
}

// PuffDose describes inhaled consumption as a puff count and potency percentage.
type PuffDose struct {
	Puffs      string
	THCPercent float64
}

func (PuffDose) isDose() {}

// AmountDose describes ingested consumption as an absolute milligram amount.
type AmountDose struct {
	Milligrams string
}

func (AmountDose) isDose() {}
