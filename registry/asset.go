package registry

// Identity is an opaque caller identity, compared only for equality.
type Identity string

func (i Identity) String() string {
	return string(i)
}

type AssetDetail struct {
	ID          uint64
	Holder      Identity
	Value       uint64
	Deactivated bool
	Notes       string
}
