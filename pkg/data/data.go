// Package data bundles the sample race reported when no directory is given.
package data

import (
	"embed"
	"io/fs"
)

const (
	StartLog      = "start.log"
	EndLog        = "end.log"
	Abbreviations = "abbreviations.txt"
)

// Names lists the files a report is built from.
var Names = []string{StartLog, EndLog, Abbreviations}

//go:embed start.log end.log abbreviations.txt
var files embed.FS

func Open(name string) (fs.File, error) {
	return files.Open(name)
}
