package dancevis

// applyPlacement seeds the starting positions of n's children along n's
// shape according to n's placement policy. Forwarded children are skipped.
func (n *Node) applyPlacement() {
	if n.shape == nil || n.placement == PlacementManual {
		return
	}
	count := 0
	for _, c := range n.children {
		if !c.pinned {
			count++
		}
	}
	if count == 0 {
		return
	}

	step := 0.0
	if n.placement == PlacementEvenlySpaced {
		step = placementStep(n.shape, count)
	}
	i := 0
	for _, c := range n.children {
		if c.pinned {
			continue
		}
		c.placeAt(n.PathPosition(step*float64(i)), n.orientation)
		i++
	}
}

// placementStep is the progress between neighbours when count travellers are
// spread evenly along s. On a closed path the last one stops a step short of
// the start; on an open path the first and last sit on the two ends.
func placementStep(s *Shape, count int) float64 {
	l := s.Length()
	switch {
	case s.IsClosed():
		return l / float64(count)
	case count > 1:
		return l / float64(count-1)
	default:
		return 0
	}
}

// placeAt moves n, and anything following it rigidly, to pos facing orient.
// A shape already assigned to n is carried along.
func (n *Node) placeAt(pos Position, orient Orientation) {
	if n.shape != nil {
		n.anchor = n.anchor.add(pos.sub(n.position))
	}
	n.SetMyPositionAndModifyChildren(pos, orient)
}
