package variants

import "headcover-configurator/models"

// collapseSet records the wood collapse keys already emitted in a run
type collapseSet map[string]struct{}

func (s collapseSet) has(key string) bool {
	_, ok := s[key]
	return ok
}

// reduceCandidates walks derived candidates in regular-variant order, dropping
// failed items and every WOOD candidate whose collapse key was already emitted.
// The accumulator is returned so a caller can continue the reduction.
func reduceCandidates(r *run, results []candidateResult, seen collapseSet) ([]models.Variant, collapseSet) {
	out := make([]models.Variant, 0, len(results))
	for _, res := range results {
		if res.err != nil {
			r.skip(StageCustom, res.shapeID, res.err)
			continue
		}
		if key := res.candidate.collapseKey; key != "" {
			if seen.has(key) {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, res.candidate.variant)
	}
	return out, seen
}
