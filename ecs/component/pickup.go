package component

type PickupKind string

const (
	PickupCoin  PickupKind = "coin"
	PickupHeart PickupKind = "heart"
)

// Pickup is a collectible. Coins are taken on contact; hearts need interact.
type Pickup struct {
	Kind   PickupKind
	Value  int
	Radius float64
}

var PickupComponent = NewComponent[Pickup]()

// Collector marks an entity that can take pickups within Range.
type Collector struct {
	Range float64
}

var CollectorComponent = NewComponent[Collector]()
