package errors

import "fmt"

// Common error constructors for the fraglog CLI. These keep the
// remediation wording consistent across commands.

// MissingConfig creates an error for a workspace with no configuration file.
func MissingConfig(dir string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("no fraglog.toml or .fraglog.toml found in %s", dir),
		"Run 'fraglog init' to scaffold a workspace",
		"Or point at an explicit file with --config",
	)
}

// InvalidConfig creates an error for a configuration file that failed to load.
func InvalidConfig(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("invalid configuration in %s", path),
		"Check the TOML syntax and required [context] fields",
	)
}

// InvalidFragmentName creates an error for a name that is not a valid
// fragment identifier.
func InvalidFragmentName(name string, err error) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid fragment name %q: %v", name, err),
		"fraglog create <id>.<type>[.<suffix>]",
		"Use a numeric id like 1024.fix, or a textual id prefixed with '~' like ~note.internal",
	)
}

// FragmentExists creates an error for creating a fragment that already exists.
func FragmentExists(path string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("fragment %s already exists", path),
		"Pick a different id, or edit the existing file",
	)
}

// MissingChangelog creates an error for a missing changelog output file.
func MissingChangelog(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("changelog %s does not exist", path),
		"Run 'fraglog init' to create it",
		"Or set paths.output to an existing file",
	)
}
