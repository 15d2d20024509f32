package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Create macOS apps that redirect to another app"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgCreatedFormat = "%s %s -> %s\n"
	MsgDryRunNotice  = "DRY RUN MODE - No changes were made"

	// Error messages
	MsgErrFormat  = "Error: application paths must end in .app"
	MsgErrExists  = "Error: target already exists"
	MsgErrResolve = "Error: could not resolve the alias target"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagForce   = "Replace the target bundle if it already exists"
	MsgFlagTarget  = "Print the original path the given alias bundle opens"
)

// Long messages
const (
	MsgRootLong = `appalias creates a macOS application bundle that, when opened, redirects
to another application. The generated bundle embeds a Finder alias to the
source app and carries over its custom icon.`

	MsgUsage = `Usage:
  appalias <source.app> <target.app>   create an alias bundle
  appalias --target <alias.app>        print the path an alias bundle opens
  appalias -h                          show help`
)
