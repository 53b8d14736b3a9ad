package paths

import (
	"flag"
)

// SetupFilePathFlag creates a new string flag with the passed name with a sane
// default for the path to the file, if found using the Find function. If not,
// the flag defaults to the file name itself, which Open serves from the
// embedded copy.
func SetupFilePathFlag(fileName, flagName string, flagPtr *string) {
	def := Find(fileName)
	if def == "" {
		def = fileName
	}
	flag.StringVar(flagPtr, flagName, def, "Path to "+fileName)
}
