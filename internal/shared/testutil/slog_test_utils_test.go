package testutil

import (
	"log/slog"
	"testing"
)

func TestBufferedSlogHandler(t *testing.T) {
	t.Run("captures log records", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("rows cleaned", slog.String("stage", "coercer"))
		logger.Error("import failed", slog.Int("rows", 0))

		records := handler.GetRecords()
		if len(records) != 2 {
			t.Errorf("Expected 2 records, got %d", len(records))
		}

		if !handler.ContainsMessage("rows cleaned") {
			t.Error("Expected to find 'rows cleaned'")
		}

		if !handler.ContainsAttr("stage", "coercer") {
			t.Error("Expected to find attribute stage=coercer")
		}
	})

	t.Run("filters by level", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Debug("debug msg")
		logger.Info("info msg")
		logger.Warn("warn msg")
		logger.Error("error msg")

		infoRecords := handler.GetRecordsByLevel(slog.LevelInfo)
		if len(infoRecords) != 1 {
			t.Errorf("Expected 1 info record, got %d", len(infoRecords))
		}

		errorRecords := handler.GetRecordsByLevel(slog.LevelError)
		if len(errorRecords) != 1 {
			t.Errorf("Expected 1 error record, got %d", len(errorRecords))
		}
	})

	t.Run("clear functionality", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("message 1")
		logger.Info("message 2")

		if len(handler.GetRecords()) != 2 {
			t.Errorf("Expected 2 records, got %d", len(handler.GetRecords()))
		}

		handler.Clear()

		if len(handler.GetRecords()) != 0 {
			t.Errorf("Expected 0 records after clear, got %d", len(handler.GetRecords()))
		}
	})

	t.Run("assertion helpers", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("pipeline complete", slog.String("component", "processor"))

		AssertLogContains(t, handler, slog.LevelInfo, "pipeline complete")
		AssertNoErrors(t, handler)

		logger.Error("something went wrong")

		errors := handler.GetRecordsByLevel(slog.LevelError)
		if len(errors) != 1 {
			t.Error("Expected to capture error log")
		}
	})

	t.Run("thread safety", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func(n int) {
				logger.Info("concurrent log", slog.Int("goroutine", n))
				done <- true
			}(i)
		}

		for i := 0; i < 10; i++ {
			<-done
		}

		if len(handler.GetRecords()) != 10 {
			t.Errorf("Expected 10 records from concurrent logging, got %d", len(handler.GetRecords()))
		}
	})
}
