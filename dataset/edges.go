package dataset

import (
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/evopath/core"
)

// ParseEdges decodes `{"edges":[...]}`. Entries missing from or to are
// skipped. Method defaults to "evolution"; confidence defaults to 1 and is
// clamped to [0,1].
func ParseEdges(data []byte) ([]core.EvolutionEdge, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	var edges []core.EvolutionEdge
	gjson.GetBytes(data, "edges").ForEach(func(_, v gjson.Result) bool {
		from, to := v.Get("from").String(), v.Get("to").String()
		if from == "" || to == "" {
			return true
		}
		e := core.NewEdge(from, to)
		if m := v.Get("method").String(); m != "" {
			e.Method = m
		}
		if c := v.Get("confidence"); c.Exists() {
			e.Confidence = clamp01(c.Float())
		}
		v.Get("sources").ForEach(func(_, s gjson.Result) bool {
			if s.String() != "" {
				e.Sources = append(e.Sources, s.String())
			}
			return true
		})
		e.Conditions = parseConditions(v.Get("conditions"))
		edges = append(edges, e)
		return true
	})

	return edges, nil
}

func parseConditions(v gjson.Result) core.Conditions {
	var c core.Conditions
	if !v.IsObject() {
		return c
	}
	threshold := func(key string) *int {
		r := v.Get(key)
		if !r.Exists() || r.Type == gjson.Null {
			return nil
		}
		return core.Int(int(r.Int()))
	}
	c.Rank = threshold(core.KindRank.String())
	c.HP = threshold(core.KindHP.String())
	c.ATK = threshold(core.KindATK.String())
	c.DEF = threshold(core.KindDEF.String())
	c.SPD = threshold(core.KindSPD.String())
	c.Personality = v.Get(core.KindPersonality.String()).String()
	c.Item = v.Get(core.KindItem.String()).String()
	c.TimeOfDay = v.Get(core.KindTimeOfDay.String()).String()

	return c
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
