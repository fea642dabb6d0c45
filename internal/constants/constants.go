package constants

// AppName names the config, cache and save directories.
const AppName = "jellyreel"

// TicksPerSecond is the Jellyfin ticks-per-second factor (100ns ticks).
const TicksPerSecond = 10_000_000

// TicksPerMinute is used for runtime display.
const TicksPerMinute = 60 * TicksPerSecond
