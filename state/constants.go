package state

var (
	// DefaultMaxHops caps how far an advertisement travels. 0 disables the cap, the relay guard alone bounds the flood.
	DefaultMaxHops = uint32(0)

	// NodeIdPrefix is used when the graph allocates a fresh identity.
	NodeIdPrefix = "node-"

	// social network generator, see core.GrowSocialNetwork
	SocialSeedPathLength       = 11
	SocialGrowNodes            = 100
	SocialSingleContactProb    = 0.95
	SocialMaxSecondaryContacts = 2

	DefaultTopologyPath = "topology.yaml"
)
