package main

import "runtime/debug"

// _version is the version of attnviz,
// taken from the module's build information when available.
var _version = moduleVersion()

func moduleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}
	return info.Main.Version
}
