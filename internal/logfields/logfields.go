package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyLocale     = "locale"
	KeyPath       = "path"
	KeyRoute      = "route"
	KeyRule       = "rule"
	KeySeverity   = "severity"
	KeyConfigPath = "config_path"
	KeyFile       = "file"
	KeyLoadID     = "load_id"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyRequestID  = "request_id"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Locale(code string) slog.Attr    { return slog.String(KeyLocale, code) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Route(r string) slog.Attr        { return slog.String(KeyRoute, r) }
func Rule(name string) slog.Attr      { return slog.String(KeyRule, name) }
func Severity(s string) slog.Attr     { return slog.String(KeySeverity, s) }
func ConfigPath(p string) slog.Attr   { return slog.String(KeyConfigPath, p) }
func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func LoadID(id string) slog.Attr      { return slog.String(KeyLoadID, id) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func RequestID(id string) slog.Attr   { return slog.String(KeyRequestID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
