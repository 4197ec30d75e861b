package cmd

import "strings"

// singleDashFlags are long flags that are traditionally written with one
// dash (-tx 1.5). pflag only allows single-character shorthands, so these
// are rewritten to their double-dash form before parsing.
var singleDashFlags = map[string]bool{
	"tx": true, "ty": true, "tz": true, "rz": true,
	"h1": true,
	"vo": true, "vx": true, "vy": true, "vz": true,
}

// normalizeArgs rewrites -tx, -tx=1 and friends to --tx, --tx=1.
// Arguments after a bare "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))

	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") {
			name, _, _ := strings.Cut(arg[1:], "=")
			if singleDashFlags[name] {
				arg = "-" + arg
			}
		}
		out = append(out, arg)
	}

	return out
}
