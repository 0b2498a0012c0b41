package i18n

var catalog = map[string]map[string]string{
	"en": {
		KeyRunStarted:        "Starting automation: %d rows, %d steps",
		KeyStopHint:          "Press %s to stop",
		KeyRowStarted:        "Processing row %d (%d of %d)",
		KeyRowDone:           "Row %d completed",
		KeyRowFailed:         "Error in row %d: %v",
		KeyContinuePrompt:    "Continue with the next row? [y/N] ",
		KeyRunCompleted:      "Automation completed: %d rows processed",
		KeyRunStopped:        "Automation stopped: %d rows processed",
		KeyRowsFailed:        "%d rows failed",
		KeyNoSteps:           "Add at least one automation step first",
		KeyNoTable:           "Load an Excel file first",
		KeyStepAdded:         "Added step %d: %s",
		KeyStepMoved:         "Moved step %d %s",
		KeyStepRemoved:       "Removed step %d",
		KeyStepTested:        "Step %d executed",
		KeyStepsEmpty:        "No automation steps",
		KeyMappingAdded:      "Mapped variable %q to column %q (sample: %s)",
		KeyMappingRemoved:    "Removed mapping %d",
		KeyMappingsEmpty:     "No column mappings",
		KeyDuplicateVariable: "Variable %q is mapped more than once; the first mapping is used",
		KeyPresetSaved:       "Preset saved to %s",
		KeyPresetsEmpty:      "No presets in %s",
		KeySheetInfo:         "Sheet %s: %d rows, columns: %s",
		KeyCaptureCountdown:  "Capturing in %d... (%d, %d)",
		KeyCaptureClick:      "Click anywhere to capture coordinates",
		KeyCaptured:          "Captured coordinates: %s",
		KeyCopied:            "Copied to clipboard",
		KeyLanguageChanged:   "Language changed successfully!",
		KeyThemeChanged:      "Theme set to %s",
		KeyWarning:           "Warning",
		KeyError:             "Error",
	},
	"it": {
		KeyRunStarted:      "Avvio automazione: %d righe, %d passi",
		KeyStopHint:        "Premi %s per fermare",
		KeyRowStarted:      "Elaborazione riga %d (%d di %d)",
		KeyRowDone:         "Riga %d completata",
		KeyRowFailed:       "Errore nella riga %d: %v",
		KeyContinuePrompt:  "Continuare con la riga successiva? [y/N] ",
		KeyRunCompleted:    "Automazione completata: %d righe elaborate",
		KeyRunStopped:      "Automazione fermata: %d righe elaborate",
		KeyNoSteps:         "Aggiungi prima almeno un passo",
		KeyNoTable:         "Carica prima un file Excel",
		KeyLanguageChanged: "Lingua cambiata con successo!",
		KeyWarning:         "Attenzione",
		KeyError:           "Errore",
	},
	"ru": {
		KeyRowDone:         "Строка %d завершена",
		KeyRowFailed:       "Ошибка в строке %d: %v",
		KeyRunCompleted:    "Автоматизация завершена: обработано строк %d",
		KeyRunStopped:      "Автоматизация остановлена: обработано строк %d",
		KeyLanguageChanged: "Язык успешно изменен!",
		KeyWarning:         "Предупреждение",
		KeyError:           "Ошибка",
	},
	"fr": {
		KeyRowDone:         "Ligne %d terminée",
		KeyRowFailed:       "Erreur à la ligne %d : %v",
		KeyRunCompleted:    "Automatisation terminée : %d lignes traitées",
		KeyRunStopped:      "Automatisation arrêtée : %d lignes traitées",
		KeyLanguageChanged: "Langue changée avec succès!",
		KeyWarning:         "Avertissement",
		KeyError:           "Erreur",
	},
	"es": {
		KeyRowDone:         "Fila %d completada",
		KeyRowFailed:       "Error en la fila %d: %v",
		KeyRunCompleted:    "Automatización completada: %d filas procesadas",
		KeyRunStopped:      "Automatización detenida: %d filas procesadas",
		KeyLanguageChanged: "¡Idioma cambiado con éxito!",
		KeyWarning:         "Advertencia",
		KeyError:           "Error",
	},
	"de": {
		KeyRowDone:         "Zeile %d abgeschlossen",
		KeyRowFailed:       "Fehler in Zeile %d: %v",
		KeyRunCompleted:    "Automatisierung abgeschlossen: %d Zeilen verarbeitet",
		KeyRunStopped:      "Automatisierung gestoppt: %d Zeilen verarbeitet",
		KeyLanguageChanged: "Sprache erfolgreich geändert!",
		KeyWarning:         "Warnung",
		KeyError:           "Fehler",
	},
	"zh": {
		KeyRowDone:         "第 %d 行已完成",
		KeyRowFailed:       "第 %d 行出错: %v",
		KeyRunCompleted:    "自动化完成: 已处理 %d 行",
		KeyRunStopped:      "自动化已停止: 已处理 %d 行",
		KeyLanguageChanged: "语言更改成功！",
		KeyWarning:         "警告",
		KeyError:           "错误",
	},
}
