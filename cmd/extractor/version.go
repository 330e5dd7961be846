package extractor

import (
	"fmt"
	"runtime/debug"

	semver "github.com/blang/semver/v4"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the extractor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString(version, buildRevision()))
		},
	})
}

// versionString normalises v (leading "v", missing components) and appends
// the VCS revision when known.
func versionString(v, revision string) string {
	s := v
	if parsed, err := semver.ParseTolerant(v); err == nil {
		s = "v" + parsed.String()
	}
	if revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		s += " (" + revision + ")"
	}
	return "extractor " + s
}

func buildRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
