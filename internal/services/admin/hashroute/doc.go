// Package hashroute keeps the admin console's active view in step with the
// browser location fragment.
//
// A Router owns the single piece of route state. It reads the fragment when it
// is created, writes it back on Navigate, and re-reads it when the browser
// reports a change it did not cause. Fragments that do not name a view fall
// back to the dashboard; they are never rejected.
package hashroute
