// Package app implements the editor use cases on top of the domain
// repositories: project, character and dialogue management, plus script export.
package app
