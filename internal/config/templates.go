package config

import (
	"os"
	"path/filepath"
)

const configTemplate = `# confluence-journal configuration

[storage]
# Sqlite database file backing the trade journal.
# Defaults to journal.db next to this file when empty.
path = ""

[sync]
# Mirror trades to a remote table (upsert by id). The journal works fully
# offline; sync is best effort and never blocks a command.
enabled = false
url = ""
timeout_seconds = 10

[ui]
color_enabled = true
date_format = "02 Jan 2006"
recent_trades = 8

[logging]
# debug, info, warn, error
level = "info"
console = false
file = true
max_size_mb = 50
max_backups = 3
max_age_days = 30
`

const credentialsTemplate = `# confluence-journal credentials
# Keep this file private (chmod 600).

[sync]
api_key = ""
`

const confluencesTemplate = `# Confluence catalog. Each [[confluences]] entry has a stable id, a display
# label, a weight (0-100) added to the score when checked, and an optional
# helper line shown in the checklist. Remove this file to restore the
# built-in catalog.

[[confluences]]
id = "weekly"
label = "WEEKLY"
weight = 10
helper = "Higher timeframe weekly trend aligned"

[[confluences]]
id = "daily"
label = "DAILY"
weight = 10
helper = "Daily trend aligned"

[[confluences]]
id = "h4"
label = "4H"
weight = 10
helper = "4H trend aligned"

[[confluences]]
id = "aoi"
label = "AOI"
weight = 20
helper = "Strong area of interest"

[[confluences]]
id = "bos"
label = "BOS / SHIFT"
weight = 15
helper = "Break of structure in your direction"

[[confluences]]
id = "fibo"
label = "FIBO 62%"
weight = 10
helper = "Prime fib retracement (around 62%)"

[[confluences]]
id = "medias"
label = "EMAs"
weight = 10
helper = "EMAs stacked in clear trend"

[[confluences]]
id = "retest"
label = "RETEST"
weight = 10
helper = "Clean break & retest"

[[confluences]]
id = "tl"
label = "TL / FLAG"
weight = 8
helper = "Trendline / flag / channel structure"

[[confluences]]
id = "candle"
label = "CANDLE"
weight = 5
helper = "Strong trigger candle (engulfing, hammer, etc.)"

[[confluences]]
id = "poc"
label = "POC"
weight = 5
helper = "Point of control / volume node at entry"

[[confluences]]
id = "ob"
label = "ORDER BLOCK"
weight = 5
helper = "Clean OB inside AOI"
`

func createTemplateConfig(configDir string) error {
	return writeTemplate(filepath.Join(configDir, "config.toml"), configTemplate, 0644)
}

func createTemplateCredentials(configDir string) error {
	return writeTemplate(filepath.Join(configDir, "credentials.toml"), credentialsTemplate, 0600)
}

// CreateTemplateConfluences writes the default catalog file so users have a
// starting point to edit.
func CreateTemplateConfluences(configDir string) error {
	return writeTemplate(filepath.Join(configDir, "confluences.toml"), confluencesTemplate, 0644)
}

func writeTemplate(path, content string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(content), perm)
}
