// Package file provides a TOML file-based implementation of the ConfigStore
// port, plus an optional fsnotify watcher that reloads the store when the
// file changes on disk. The watcher lets a long-running server pick up
// edited API keys without a restart.
package file
