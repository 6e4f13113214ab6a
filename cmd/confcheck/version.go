package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

const shortCommitLength = 12

// Build information set by ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// buildInfo is what the version command reports.
type buildInfo struct {
	Version  string
	Commit   string
	Date     string
	Go       string
	Platform string
	Modified bool
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version and build information for confcheck.",
	RunE:  runVersion,
}

// versionRequested is set by the --version/-v flag.
var versionRequested bool

var versionShort bool

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().BoolVarP(&versionRequested, "version", "v", false, "Print version information")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := currentBuild()

	out := info.String()
	if versionShort {
		out = info.Version + "\n"
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), out)

	return err
}

func versionString() string {
	return currentBuild().String()
}

// currentBuild prefers ldflags values and fills gaps from the VCS stamp the
// go tool embeds.
func currentBuild() buildInfo {
	info := buildInfo{
		Version:  version,
		Commit:   commit,
		Date:     date,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	vcs := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		vcs[s.Key] = s.Value
	}

	if rev := vcs["vcs.revision"]; rev != "" && info.Commit == "unknown" {
		info.Commit = rev[:min(shortCommitLength, len(rev))]
	}

	if t := vcs["vcs.time"]; t != "" && info.Date == "unknown" {
		info.Date = t
	}

	info.Modified = vcs["vcs.modified"] == "true"

	return info
}

func (b buildInfo) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "confcheck %s\n", b.Version)

	rows := [][2]string{
		{"commit", b.Commit},
		{"built", b.Date},
		{"go", b.Go},
		{"platform", b.Platform},
	}

	if b.Modified {
		rows = append(rows, [2]string{"modified", "true"})
	}

	for _, row := range rows {
		fmt.Fprintf(&sb, "  %-10s %s\n", row[0]+":", row[1])
	}

	return sb.String()
}
