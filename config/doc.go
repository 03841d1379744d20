/*
Package config loads rlog settings for a host application.

Values are layered in this order, later sources overriding earlier ones:

 1. Built-in defaults (logging off, 100 retained entries, no sink)
 2. A YAML file: the path passed to Load, else RLOG_CONFIG, else the first
    of DefaultConfigPaths that exists
 3. RLOG_-prefixed environment variables

Example file:

	verbose: true
	entries_to_keep: 250
	sink: zerolog
	console: true
	breaker:
	  enabled: true
	  failure_threshold: 5
	  timeout: 30s

Environment variables: RLOG_VERBOSE, RLOG_ENTRIES_TO_KEEP, RLOG_SINK,
RLOG_CONSOLE, RLOG_BREAKER_ENABLED, RLOG_BREAKER_FAILURE_THRESHOLD,
RLOG_BREAKER_TIMEOUT.
*/
package config
