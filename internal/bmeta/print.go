// Package bmeta выводит метаданные сборки, переданные через -ldflags.
package bmeta

import (
	"fmt"
	"io"
	"os"
)

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Info версия, дата и коммит сборки.
type Info struct {
	Version string
	Date    string
	Commit  string
}

// New заполняет пустые значения строкой N/A.
func New(version, date, commit string) Info {
	return Info{
		Version: orDefault(version),
		Date:    orDefault(date),
		Commit:  orDefault(commit),
	}
}

// Fprint пишет метаданные сборки в w.
func (i Info) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", i.Version, i.Date, i.Commit)
	return err //nolint:wrapcheck
}

// Print Распечатывает версию, дату и комит сборки.
func Print(version, date, commit string) {
	_ = New(version, date, commit).Fprint(os.Stdout)
}

func orDefault(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
