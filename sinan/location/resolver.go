package location

import (
	"github.com/sirupsen/logrus"
)

// Node is one entry of the hierarchical location tree: country at the root,
// states below it, municipalities below those. Some states interpose a
// health-region layer between state and municipality.
type Node struct {
	ID       string
	Name     string
	Children []*Node
}

// DefaultRegionStates lists the states whose children are health regions
// rather than municipalities. Adding a state here is a data-only change.
var DefaultRegionStates = []string{"Santa Catarina"}

// Resolver translates a state/municipality name pair into the canonical
// location id. Name comparison is exact; there is no fuzzy matching.
type Resolver struct {
	root         *Node
	regionStates map[string]struct{}
	logger       logrus.FieldLogger
}

// NewResolver builds a resolver over the country subtree. A nil regionStates
// slice selects DefaultRegionStates.
func NewResolver(root *Node, logger logrus.FieldLogger, regionStates []string) *Resolver {
	if regionStates == nil {
		regionStates = DefaultRegionStates
	}
	set := make(map[string]struct{}, len(regionStates))
	for _, s := range regionStates {
		set[s] = struct{}{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Resolver{root: root, regionStates: set, logger: logger}
}

// Resolve walks the tree for the municipality's id. A miss at any level
// returns ("", false); the caller treats that as reported-but-non-fatal.
func (r *Resolver) Resolve(state, municipality string) (string, bool) {
	if r.root == nil {
		return "", false
	}

	stateNode := findChild(r.root.Children, state)
	if stateNode == nil {
		r.logger.Warnf("State not found in location tree: %s", state)
		return "", false
	}

	var municipalityNode *Node
	if _, hasRegions := r.regionStates[state]; hasRegions {
		for _, region := range stateNode.Children {
			if municipalityNode = findChild(region.Children, municipality); municipalityNode != nil {
				break
			}
		}
	} else {
		municipalityNode = findChild(stateNode.Children, municipality)
	}

	if municipalityNode == nil {
		r.logger.Warnf("Municipality not found under state %s: %s", state, municipality)
		return "", false
	}
	return municipalityNode.ID, true
}

func findChild(nodes []*Node, name string) *Node {
	for _, n := range nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// FindCountry picks the country subtree by name from the top-level nodes
// returned by the registry.
func FindCountry(nodes []*Node, name string) *Node {
	return findChild(nodes, name)
}
