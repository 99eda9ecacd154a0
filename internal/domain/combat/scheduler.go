package combat

import "sort"

// turnOrder returns the living units in acting order for one round:
// effective speed descending, unit id ascending on ties. Recomputed
// every round so haste and slow shift positions.
func turnOrder(units []*Runtime) []*Runtime {
	order := make([]*Runtime, 0, len(units))
	for _, u := range units {
		if u.Alive() {
			order = append(order, u)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		si, sj := order[i].EffectiveSpeed(), order[j].EffectiveSpeed()
		if si != sj {
			return si > sj
		}
		return order[i].ID < order[j].ID
	})
	return order
}
