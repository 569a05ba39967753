// Package renpy renders editor projects as Ren'Py game scripts.
package renpy
