// Package persistence provides the GORM repositories of the editor.
// Projects own characters and dialogue lines; deleting a project removes
// both, and deleting a character turns its lines into narration.
package persistence
