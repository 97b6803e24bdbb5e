package cli

const (
	CmdRoot    = "sst-launcher"
	CmdFlags   = "flags"
	CmdVersion = "version"
	CmdConfig  = "config"
	CmdInit    = "init"

	FlagConfig      = "config"
	FlagOS          = "os"
	FlagDryRun      = "dry-run"
	FlagStrictBuild = "strict-build"
	FlagAggregate   = "aggregate"
	FlagSummary     = "summary"
	FlagVerbose     = "verbose"
	FlagLogLevel    = "log-level"
	FlagJSON        = "json"
	FlagForce       = "force"
)
