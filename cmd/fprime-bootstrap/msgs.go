package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Create new F´ projects from templates"
	MsgProjectShort    = "Create a new project"
	MsgTemplatesShort  = "List bundled templates"
	MsgTemplatesLong   = "List the templates bundled with fprime-bootstrap. The default one is marked."
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "fprime-bootstrap %s (commit %s, built %s)"
	MsgNoConfigFile  = "# no user config file, expected at %s\n"
	MsgConfigFile    = "# loaded from %s\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Read configuration from this file instead of the user config"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagPath      = "Destination directory, same as the PATH argument"
	MsgFlagName      = "Project name (default: last element of PATH)"
	MsgFlagTemplate  = "Template to generate from (see 'fprime-bootstrap templates')"
	MsgFlagDryRun    = "Show what would be generated without writing anything"
	MsgFlagNoVerify  = "Skip checking the generated tree for leftover markers and placeholders"
	MsgFlagDefaults  = "Print the embedded defaults instead of the effective configuration"
	MsgFlagNoLogFile = "Do not write the log file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/project-long.txt
	msgProjectLongRaw string
	MsgProjectLong    = strings.TrimSpace(msgProjectLongRaw)

	//go:embed msgs/project-example.txt
	msgProjectExampleRaw string
	MsgProjectExample    = strings.TrimRight(msgProjectExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
