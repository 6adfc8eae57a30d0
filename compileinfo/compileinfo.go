// Package compileinfo reports the VCS state a labstat binary was built from,
// for -version flags and report footers.
package compileinfo

import (
	"fmt"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Commit == "" {
		return fmt.Sprintf("%s built with %s from an unknown commit", c.name(), c.goVersion())
	}

	mod := ""
	if c.Modified {
		mod = " (modified)"
	}

	return fmt.Sprintf("%s built with %s at commit %s from %s%s", c.name(), c.goVersion(), c.Commit, c.CommitTime, mod)
}

// Short is a one line stamp for the end of a report: the package, the
// abbreviated commit and a + if the tree was dirty.
func (c CompileInfo) Short() string {
	commit := c.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		commit = "unknown"
	}
	if c.Modified {
		commit += "+"
	}

	return fmt.Sprintf("%s@%s", c.name(), commit)
}

func (c CompileInfo) name() string {
	if c.Package == "" {
		return "labstat"
	}
	return c.Package
}

func (c CompileInfo) goVersion() string {
	if c.GoVersion == "" {
		return "an unknown Go version"
	}
	return c.GoVersion
}

func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		GoVersion: z.GoVersion,
		Package:   z.Path,
	}

	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}
