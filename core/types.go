package core

// MethodEvolution is the generic evolution method tag.
const MethodEvolution = "evolution"

// ConditionKind enumerates the closed set of gate kinds an edge may carry.
type ConditionKind int

const (
	// KindRank is a minimum rank/level.
	KindRank ConditionKind = iota
	// KindHP is a minimum HP threshold.
	KindHP
	// KindATK is a minimum attack threshold.
	KindATK
	// KindDEF is a minimum defence threshold.
	KindDEF
	// KindSPD is a minimum speed threshold.
	KindSPD
	// KindPersonality is a required personality tag.
	KindPersonality
	// KindItem is a required item.
	KindItem
	// KindTimeOfDay is a required time of day.
	KindTimeOfDay

	kindCount
)

// Kinds returns every ConditionKind in declaration order.
func Kinds() []ConditionKind {
	out := make([]ConditionKind, 0, kindCount)
	for k := KindRank; k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// String returns the data-file key of the kind.
func (k ConditionKind) String() string {
	switch k {
	case KindRank:
		return "rank"
	case KindHP:
		return "hp"
	case KindATK:
		return "atk"
	case KindDEF:
		return "def"
	case KindSPD:
		return "spd"
	case KindPersonality:
		return "personality"
	case KindItem:
		return "item"
	case KindTimeOfDay:
		return "time"
	default:
		return "unknown"
	}
}

// Conditions is the optional gate attached to an edge.
// A nil threshold or empty tag means "not required".
type Conditions struct {
	Rank *int `json:"rank,omitempty"`
	HP   *int `json:"hp,omitempty"`
	ATK  *int `json:"atk,omitempty"`
	DEF  *int `json:"def,omitempty"`
	SPD  *int `json:"spd,omitempty"`

	Personality string `json:"personality,omitempty"`
	Item        string `json:"item,omitempty"`
	TimeOfDay   string `json:"time,omitempty"`
}

// Has reports whether the condition of kind k is set.
func (c Conditions) Has(k ConditionKind) bool {
	switch k {
	case KindRank:
		return c.Rank != nil
	case KindHP:
		return c.HP != nil
	case KindATK:
		return c.ATK != nil
	case KindDEF:
		return c.DEF != nil
	case KindSPD:
		return c.SPD != nil
	case KindPersonality:
		return c.Personality != ""
	case KindItem:
		return c.Item != ""
	case KindTimeOfDay:
		return c.TimeOfDay != ""
	default:
		return false
	}
}

// Count returns how many condition kinds are set.
func (c Conditions) Count() int {
	n := 0
	for k := KindRank; k < kindCount; k++ {
		if c.Has(k) {
			n++
		}
	}

	return n
}

// IsEmpty reports whether no condition is set.
func (c Conditions) IsEmpty() bool { return c.Count() == 0 }

// EvolutionEdge is a directed "From can evolve into To" relation.
//
// From and To are resolved slugs or raw display names, depending on the
// producer. Edges are values; nothing in evopath mutates one after creation.
type EvolutionEdge struct {
	From       string     `json:"from"`
	To         string     `json:"to"`
	Method     string     `json:"method"`
	Conditions Conditions `json:"conditions"`
	Sources    []string   `json:"sources,omitempty"`
	Confidence float64    `json:"confidence"`
}

// NewEdge returns an ungated evolution edge with full confidence.
func NewEdge(from, to string) EvolutionEdge {
	return EvolutionEdge{From: from, To: to, Method: MethodEvolution, Confidence: 1}
}

// Int returns a pointer to v, for populating Conditions thresholds.
func Int(v int) *int { return &v }
