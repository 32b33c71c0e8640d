package hashroute

// Targets maps each view to its render target.
type Targets[T any] struct {
	Dashboard  T
	Promocodes T
	Settings   T
	Users      T
}

// Resolve returns the target registered for view. Views outside the known set
// resolve to the dashboard target.
func Resolve[T any](view View, targets Targets[T]) T {
	switch view {
	case Dashboard:
		return targets.Dashboard
	case Promocodes:
		return targets.Promocodes
	case Settings:
		return targets.Settings
	case Users:
		return targets.Users
	default:
		return targets.Dashboard
	}
}
