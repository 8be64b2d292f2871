package village

import "github.com/Faultbox/midgard-village/internal/paths"

// NetworkStats summarizes one path network.
type NetworkStats struct {
	Chains       int
	Vertices     int
	Edges        int
	Welds        int
	MeshVertices int
	Triangles    int
}

// Stats summarizes a generated village.
type Stats struct {
	Rivers   NetworkStats
	Roads    NetworkStats
	Bridges  int
	Houses   int
	BySource map[Source]int
	Rejected int
}

// Stats counts what the village holds.
func (v *Village) Stats() Stats {
	s := Stats{
		Rivers:   networkStats(v.Rivers),
		Roads:    networkStats(v.Roads),
		Bridges:  len(v.Bridges),
		Houses:   len(v.Houses),
		BySource: make(map[Source]int),
	}
	for _, h := range v.Houses {
		s.BySource[h.Source]++
	}
	for _, n := range v.Rejected {
		s.Rejected += n
	}
	return s
}

func networkStats(n *paths.Network) NetworkStats {
	if n == nil || n.Forest == nil {
		return NetworkStats{}
	}
	s := NetworkStats{
		Chains:   len(n.Forest.Chains),
		Vertices: n.Forest.VertexCount(),
		Edges:    n.Forest.EdgeCount(),
		Welds:    len(n.Forest.Welds),
	}
	if n.Mesh != nil {
		s.MeshVertices = n.Mesh.VertexCount()
		s.Triangles = n.Mesh.TriangleCount()
	}
	return s
}
