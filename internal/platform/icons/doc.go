// Package icons defines the icon identifiers used by the admin console.
//
// Each identifier maps to a Lucide icon name; the console inlines one SVG
// sprite and references symbols by ID, so pages never carry raw path data.
package icons
