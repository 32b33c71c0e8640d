// Package admin serves the BuryatVPN admin console.
//
// The console is a single shell document whose main area follows the
// location fragment. Each view request builds a hashroute.Router over the
// fragment the browser reported, applies the trigger (init, navigate or an
// external change) and answers with the resolved view plus the location
// writes the client must replay.
package admin
