package graph

// Edge types of the musical influence dataset
const (
	EdgeInStyleOf          = "InStyleOf"
	EdgeInterpolatesFrom   = "InterpolatesFrom"
	EdgeCoverOf            = "CoverOf"
	EdgeLyricalReferenceTo = "LyricalReferenceTo"
	EdgeDirectlySamples    = "DirectlySamples"
	EdgePerformerOf        = "PerformerOf"
	EdgeComposerOf         = "ComposerOf"
	EdgeProducerOf         = "ProducerOf"
	EdgeLyricistOf         = "LyricistOf"
	EdgeRecordedBy         = "RecordedBy"
	EdgeDistributedBy      = "DistributedBy"
	EdgeMemberOf           = "MemberOf"
)

// Category groups edge types by function
type Category string

const (
	CategoryCreativeInfluence    Category = "creative_influence"
	CategoryProfessionalRole     Category = "professional_role"
	CategoryBusinessRelationship Category = "business_relationship"
	CategoryMembership           Category = "membership"
	CategoryUncategorized        Category = "uncategorized"
)

// Categories lists the fixed categories in report order
var Categories = []Category{
	CategoryCreativeInfluence,
	CategoryProfessionalRole,
	CategoryBusinessRelationship,
	CategoryMembership,
}

// Fixed category lookup tables. The order here is the order written to edge_analysis.json.
var (
	CreativeInfluences = []string{
		EdgeInStyleOf, EdgeInterpolatesFrom, EdgeCoverOf, EdgeLyricalReferenceTo, EdgeDirectlySamples,
	}
	ProfessionalRoles = []string{
		EdgePerformerOf, EdgeComposerOf, EdgeProducerOf, EdgeLyricistOf,
	}
	BusinessRelationships = []string{
		EdgeRecordedBy, EdgeDistributedBy,
	}
	Memberships = []string{
		EdgeMemberOf,
	}
)

var edgeCategories = func() map[string]Category {
	m := make(map[string]Category)
	for cat, types := range map[Category][]string{
		CategoryCreativeInfluence:    CreativeInfluences,
		CategoryProfessionalRole:     ProfessionalRoles,
		CategoryBusinessRelationship: BusinessRelationships,
		CategoryMembership:           Memberships,
	} {
		for _, t := range types {
			m[t] = cat
		}
	}
	return m
}()

// CategoryOf returns the functional category of an edge type
func CategoryOf(edgeType string) Category {
	if cat, ok := edgeCategories[edgeType]; ok {
		return cat
	}
	return CategoryUncategorized
}

// EdgeTypesIn returns the edge types belonging to a category
func EdgeTypesIn(cat Category) []string {
	switch cat {
	case CategoryCreativeInfluence:
		return CreativeInfluences
	case CategoryProfessionalRole:
		return ProfessionalRoles
	case CategoryBusinessRelationship:
		return BusinessRelationships
	case CategoryMembership:
		return Memberships
	default:
		return nil
	}
}

// IsCreativeInfluence reports whether an edge is a creative-influence relationship
func IsCreativeInfluence(e Edge) bool {
	return CategoryOf(e.Type) == CategoryCreativeInfluence
}
