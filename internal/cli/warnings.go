package cli

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// deferredWarnings buffers JSON log lines written before the command
// logger is configured.
type deferredWarnings struct {
	buf bytes.Buffer
}

func (d *deferredWarnings) Write(p []byte) (int, error) {
	return d.buf.Write(p)
}

// replay re-emits each buffered line as a warning on logger.
func (d *deferredWarnings) replay(logger zerolog.Logger) {
	dec := json.NewDecoder(&d.buf)
	for dec.More() {
		var entry map[string]any
		if err := dec.Decode(&entry); err != nil {
			logger.Warn().Err(err).Msg("dropping malformed buffered log entry")
			return
		}
		msg, _ := entry[zerolog.MessageFieldName].(string)
		delete(entry, zerolog.MessageFieldName)
		delete(entry, zerolog.LevelFieldName)
		logger.Warn().Fields(entry).Msg(msg)
	}
}
