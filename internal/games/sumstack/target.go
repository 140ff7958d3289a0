package sumstack

// Target returns a new target sum drawn uniformly from
// [TargetMin, TargetMax]. Targets are generated independently of the
// grid contents, so a target may be unreachable until new rows arrive.
func (g *Generator) Target() int {
	return g.rules.TargetMin + g.rng.Intn(g.rules.TargetMax-g.rules.TargetMin+1)
}
