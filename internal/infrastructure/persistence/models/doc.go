// Package models contains the GORM database models of the editor.
// The models own the table layout and are converted to and from the
// domain entities at the repository boundary.
package models
