package quote

import "clearview_estimator/internal/domain/entities"

// Selection is a customer click in the estimator: either a main
// window-cleaning package or an independent add-on.
type Selection interface {
	selection()
}

// MainSelection picks one of the mutually exclusive window-cleaning packages.
type MainSelection struct {
	Tier entities.PackageTier
	Key  entities.ServiceKey
}

// AddOnSelection toggles an independent service. Quantity only matters for
// quantity-priced services (screen repair and building).
type AddOnSelection struct {
	Key      entities.ServiceKey
	Quantity int
}

func (MainSelection) selection()  {}
func (AddOnSelection) selection() {}
