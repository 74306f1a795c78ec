package log

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about patch runs
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 FileChangeType represents the type of change made to a file
type FileChangeType int

const (
	FilePatched FileChangeType = iota
	FileUnchanged
	FileSkipped
	FileError
)

// 🖼️ FileChange represents the outcome of one file-patch run
type FileChange struct {
	Type        FileChangeType
	Path        string
	Description string
	Error       error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogFileChange logs a file change with appropriate emoji and formatting
func (u *UserLogger) LogFileChange(change FileChange) {
	// Get relative path for cleaner output
	relPath := filepath.Base(change.Path)

	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FilePatched:
		prefix = "🔄"
		action = "Patched"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case FileUnchanged:
		prefix = "👍"
		action = "Unchanged"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case FileSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case FileError:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, relPath)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	if change.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Msg(msg) // Also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg) // Also log to zerolog for debugging
	}
}

// 📊 LogRunSummary logs the overall outcome of a patch run
func (u *UserLogger) LogRunSummary(applied, skipped, failed int) {
	description := fmt.Sprintf("%d applied, %d skipped, %d failed", applied, skipped, failed)
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}
