// Package check compares the watched config files against their mirror and
// builds the widget payload.
package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"confsync/internal/config"
	"confsync/internal/display"
	"confsync/internal/logger"
	"confsync/internal/model"
	"confsync/internal/scan"
	"confsync/internal/watchlist"

	"go.uber.org/zap"
)

// Inspect loads the watch list and compares every watched path. The only
// error it returns is a failure to read the sync script.
func Inspect(cfg *config.Config) (model.Report, error) {
	report := model.Report{
		ConfigDir: cfg.ConfigDir,
		MirrorDir: cfg.MirrorDir,
	}

	spec, err := watchlist.Load(cfg.SyncScript)
	if err != nil {
		return report, err
	}

	logger.Log.Debug("loaded watch list",
		zap.String("script", cfg.SyncScript),
		zap.Strings("folders", spec.Folders),
		zap.Strings("files", spec.Files))

	c := scan.NewComparator(cfg.ConfigDir, cfg.MirrorDir, cfg.IgnoreList)
	report.Watched = c.Watched(spec)
	report.Mismatched = c.Mismatches(report.Watched)

	return report, nil
}

// Run produces the payload for one snapshot. On error the returned payload is
// already the error payload and should still be printed.
func Run(cfg *config.Config) (model.Payload, error) {
	report, err := Inspect(cfg)
	if err != nil {
		logger.Log.Error("cannot read sync script",
			zap.String("path", cfg.SyncScript),
			zap.Error(err))
		return ScriptErrorPayload(cfg.Text, err), err
	}

	return PayloadFor(cfg.Text, report), nil
}

func PayloadFor(text string, report model.Report) model.Payload {
	if len(report.Mismatched) == 0 {
		return model.Payload{
			Text:  text,
			Class: model.ClassInSync,
		}
	}

	return model.Payload{
		Text:    text,
		Tooltip: display.Tooltip(report.Mismatched, report.Watched),
		Class:   model.ClassOutOfSync,
	}
}

func ScriptErrorPayload(text string, err error) model.Payload {
	return model.ErrorPayload(text, "Error reading sync script: "+describe(err))
}

func ConfigErrorPayload(text string, err error) model.Payload {
	return model.ErrorPayload(text, "Error loading config: "+err.Error())
}

// describe drops our own wrapping and keeps the OS-level description.
func describe(err error) string {
	if pathErr, ok := errors.AsType[*fs.PathError](err); ok {
		return pathErr.Error()
	}
	return err.Error()
}

// Write prints payload as a single JSON line.
func Write(w io.Writer, payload model.Payload) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	return nil
}
