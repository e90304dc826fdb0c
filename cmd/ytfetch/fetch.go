package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ytfetch/internal/config"
	"ytfetch/internal/logging"
	"ytfetch/internal/transcript"
	"ytfetch/internal/transcriptcache"
	"ytfetch/internal/youtube"
)

// errFetchFailed signals that a failure envelope has already been written to
// stdout and the process must exit 1 without further output there.
var errFetchFailed = errors.New("transcript fetch failed")

func runFetch(cmd *cobra.Command, cctx *commandContext, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return emitFailure(out, "Video ID required")
	}

	cfg, err := cctx.ensureConfig()
	if err != nil {
		return emitFailure(out, err.Error())
	}

	videoID := strings.TrimSpace(args[0])
	if id := youtube.ExtractVideoID(videoID); id != "" {
		videoID = id
	}
	language := cfg.Fetch.DefaultLanguage
	if len(args) > 1 && strings.TrimSpace(args[1]) != "" {
		language = strings.TrimSpace(args[1])
	}

	logger, closeLogger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return emitFailure(out, err.Error())
	}
	defer closeLogger()
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	client, err := newTranscriptClient(cfg)
	if err != nil {
		return emitFailure(out, err.Error())
	}

	var cache transcript.Cache
	if cfg.Cache.Enabled {
		store, err := transcriptcache.Open(cfg.Cache.Path)
		if err != nil {
			logger.Warn("transcript cache unavailable",
				logging.String(logging.FieldEventType, "cache_open_failed"),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check cache.path in config"),
				logging.String(logging.FieldImpact, "transcript will be fetched from the network"))
		} else {
			defer store.Close()
			cache = store
		}
	}

	service := transcript.NewService(client, cache, logger)

	result, err := service.Fetch(cmd.Context(), videoID, language)
	if err != nil {
		return emitFailure(out, err.Error())
	}

	if err := transcript.WriteEnvelope(out, transcript.SuccessEnvelope(result)); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}
	return nil
}

func newTranscriptClient(cfg *config.Config) (*youtube.Client, error) {
	return youtube.New(youtube.Config{
		BaseURL:        cfg.Fetch.BaseURL,
		UserAgent:      cfg.Fetch.UserAgent,
		AcceptLanguage: cfg.Fetch.AcceptLanguage,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		},
	})
}

// emitFailure writes the failure envelope and returns the sentinel that makes
// main exit 1 quietly.
func emitFailure(w io.Writer, message string) error {
	if err := transcript.WriteEnvelope(w, transcript.FailureEnvelope(message)); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}
	return errFetchFailed
}
