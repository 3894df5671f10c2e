package component

// Banner is a HUD message shown for Remaining seconds.
type Banner struct {
	Text      string
	Remaining float64
}

var BannerComponent = NewComponent[Banner]()
