// Package i18n holds the user-facing message catalog.
//
// Messages are looked up by language code and key. A key missing from a
// language falls back to English, and a key missing from English is returned
// as-is so untranslated output is still readable.
package i18n

import "fmt"

// Fallback is the language every key is defined in.
const Fallback = "en"

// Message keys.
const (
	KeyRunStarted        = "run_started"
	KeyStopHint          = "stop_hint"
	KeyRowStarted        = "row_started"
	KeyRowDone           = "row_done"
	KeyRowFailed         = "row_failed"
	KeyContinuePrompt    = "continue_prompt"
	KeyRunCompleted      = "run_completed"
	KeyRunStopped        = "run_stopped"
	KeyRowsFailed        = "rows_failed"
	KeyNoSteps           = "no_steps"
	KeyNoTable           = "no_table"
	KeyStepAdded         = "step_added"
	KeyStepMoved         = "step_moved"
	KeyStepRemoved       = "step_removed"
	KeyStepTested        = "step_tested"
	KeyStepsEmpty        = "steps_empty"
	KeyMappingAdded      = "mapping_added"
	KeyMappingRemoved    = "mapping_removed"
	KeyMappingsEmpty     = "mappings_empty"
	KeyDuplicateVariable = "duplicate_variable"
	KeyPresetSaved       = "preset_saved"
	KeyPresetsEmpty      = "presets_empty"
	KeySheetInfo         = "sheet_info"
	KeyCaptureCountdown  = "capture_countdown"
	KeyCaptureClick      = "capture_click"
	KeyCaptured          = "captured"
	KeyCopied            = "copied"
	KeyLanguageChanged   = "language_changed"
	KeyThemeChanged      = "theme_changed"
	KeyWarning           = "warning"
	KeyError             = "error"
)

// T returns the message for key in lang, formatted with args when any are
// given.
func T(lang, key string, args ...any) string {
	msg, ok := catalog[lang][key]
	if !ok {
		msg, ok = catalog[Fallback][key]
	}
	if !ok {
		msg = key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Has reports whether lang defines key itself, without fallback.
func Has(lang, key string) bool {
	_, ok := catalog[lang][key]
	return ok
}
