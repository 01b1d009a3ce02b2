// Package coursechef converts exported edX-style course packages into a
// normalized content tree for import into a learning-content platform.
// It resolves the course's XML fragment files into a source tree, prunes
// and classifies that tree, and reshapes it into topics, exercises, videos,
// documents and packaged HTML bundles.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, goquery/, sqlite/).
package coursechef
