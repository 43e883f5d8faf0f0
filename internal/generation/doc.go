// Package generation provides interfaces and implementations for turning a
// drawn three-card spread into a complete interpretation. It abstracts the
// details of interpretation authoring behind a Generator boundary, allowing
// the application to produce readings from a template catalog without
// coupling the session flow to a specific interpretation source.
package generation
