package hashroute

// Observer is notified after the active view changes.
type Observer func(View)

// Option configures a Router.
type Option func(*Router)

// WithObserver registers fn to run after every view change, including the
// initial one.
func WithObserver(fn Observer) Option {
	return func(r *Router) {
		if fn != nil {
			r.observers = append(r.observers, fn)
		}
	}
}

// Router holds the active view and keeps it mirrored in a Location.
//
// A Router is not safe for concurrent use; it belongs to the single context
// that owns the page.
type Router struct {
	location    Location
	current     View
	initialized bool
	observers   []Observer
}

// New builds a router over location and initializes it from the current
// fragment.
func New(location Location, opts ...Option) *Router {
	r := &Router{location: location, current: Default}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.Initialize()
	return r
}

// Initialize adopts the view named by the current fragment, falling back to
// Default for empty or unknown fragments.
func (r *Router) Initialize() {
	if r == nil {
		return
	}
	r.sync()
}

// Navigate makes view active and writes it to the location as a new entry.
// Views outside the known set navigate to Default.
func (r *Router) Navigate(view View) {
	if r == nil {
		return
	}
	if !view.Valid() {
		view = Default
	}
	if r.location != nil && trimHash(r.location.Fragment()) != view.String() {
		r.location.SetFragment(view.String())
	}
	r.set(view)
}

// OnExternalChange re-derives the active view after the fragment changed
// without a call to Navigate.
func (r *Router) OnExternalChange() {
	if r == nil {
		return
	}
	r.sync()
}

// Current returns the active view.
func (r *Router) Current() View {
	if r == nil {
		return Default
	}
	return r.current
}

// Fragment returns the fragment the router last observed or wrote.
func (r *Router) Fragment() string {
	if r == nil || r.location == nil {
		return ""
	}
	return trimHash(r.location.Fragment())
}

func (r *Router) sync() {
	fragment := ""
	if r.location != nil {
		fragment = trimHash(r.location.Fragment())
	}
	view := Parse(fragment)
	if r.location != nil && fragment != view.String() {
		r.replace(view.String())
	}
	r.set(view)
}

func (r *Router) replace(fragment string) {
	if replacer, ok := r.location.(FragmentReplacer); ok {
		replacer.ReplaceFragment(fragment)
		return
	}
	r.location.SetFragment(fragment)
}

func (r *Router) set(view View) {
	changed := !r.initialized || r.current != view
	r.current = view
	r.initialized = true
	if !changed {
		return
	}
	for _, fn := range r.observers {
		fn(view)
	}
}
