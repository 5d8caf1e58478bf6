package version

import "fmt"

var CurrentCommit string

// BuildVersion is the local build version, set by build system
const BuildVersion = "0.4.0"

func String() string {
	return fmt.Sprintf("%s%s", BuildVersion, CurrentCommit)
}
