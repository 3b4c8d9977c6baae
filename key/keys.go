// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Track Source Identifiers - these keys manage the registration and selection of search sources.
const (
	DefaultSources = "sources.default"
)

// Search Interaction - these keys define the parameters for song discovery.
const (
	SearchLimit                = "search.limit"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Audio Download - these keys govern the external downloader invocation.
const (
	DownloaderFormat  = "downloader.format"
	DownloaderQuality = "downloader.quality"
)

// Stem Separation - these keys configure the hosted separation service client.
const (
	SeparatorURL          = "separator.url"
	SeparatorStem         = "separator.stem"
	SeparatorPollInterval = "separator.poll_interval"
	SeparatorKeepOriginal = "separator.keep_original"
)

// Playback - these keys maintain the configuration for external audio output.
const (
	PlayerFallbacks = "player.fallbacks"
)

// Take Catalog - these keys configure the persistence of processed results.
const (
	TakesSaveOnListen = "takes.save_on_listen"
)

// Minimalist (Mini) Mode - these keys configure the lightweight prompt-driven flow.
const (
	MiniSearchLimit = "mini.search_limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
