package config

// Defaults returns the built-in default configuration values. The
// context section has no defaults: it identifies the project and must
// come from the workspace file.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"paths": map[string]interface{}{
			"directory": "changes",
			"output":    "CHANGELOG.md",
		},
		// Marker in the changelog after which new entries are spliced.
		"start": "<!-- fraglog: start -->",
		"levels": map[string]interface{}{
			"entry":   2,
			"section": 3,
		},
		"indents": map[string]interface{}{
			"heading": "#",
			"bullet":  "-",
		},
		"formats": map[string]interface{}{
			"title":    "[{{.version}}]({{.url}}/tree/v{{.version}}) ({{.date}})",
			"fragment": "{{.content}} ([#{{.id}}]({{.url}}/pull/{{.id}}))",
		},
		"wrap": 100,
		"order": []string{
			"security",
			"feature",
			"change",
			"fix",
			"deprecation",
			"removal",
			"internal",
		},
		// User [types] entries merge over these rather than replacing them.
		"types": map[string]interface{}{
			"security":    "Security",
			"feature":     "Features",
			"change":      "Changes",
			"fix":         "Fixes",
			"deprecation": "Deprecations",
			"removal":     "Removals",
			"internal":    "Internal",
		},
	}
}

// StarterTemplate returns a commented fraglog.toml that 'fraglog init'
// writes into new workspaces.
func StarterTemplate(name, url string) string {
	return `# fraglog configuration
# See https://github.com/ariel-frischer/fraglog for all options.

[context]
name = "` + name + `"
version = "0.1.0"
url = "` + url + `"

# [paths]
# directory = "changes"                # Directory containing fragment files
# output = "CHANGELOG.md"              # Changelog file to splice entries into

# start = "<!-- fraglog: start -->"    # Entries are inserted after this marker

# [levels]
# entry = 2                            # Heading level of the entry title
# section = 3                          # Heading level of each section

# [indents]
# heading = "#"                        # Heading character
# bullet = "-"                         # Bullet character

# [formats]
# title = "[{{.version}}]({{.url}}/tree/v{{.version}}) ({{.date}})"
# fragment = "{{.content}} ([#{{.id}}]({{.url}}/pull/{{.id}}))"

# wrap = 100                           # Column width entries are wrapped to

# order = ["security", "feature", "change", "fix", "deprecation", "removal", "internal"]

# [types]                              # Extra type -> section title mappings
# epic = "Epics"
`
}
