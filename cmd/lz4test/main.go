package main

import (
	"os"

	"github.com/sirupsen/logrus"

	env "lz4-pkg/config"
	"lz4-pkg/filer"
	"lz4-pkg/lz4"
)

func main() {
	cfg := DefaultConfig()
	if err := env.Read(&cfg); err != nil {
		// 設定ファイルがなくても固定の文字列で動かせる
		logrus.WithError(err).Warn("config not loaded, using defaults")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	logger := logrus.WithFields(logrus.Fields{
		"app":     "lz4test",
		"version": lz4.GetVersionString(),
	})
	logger.WithFields(logrus.Fields{
		"level":      cfg.Level,
		"block_size": cfg.Frame.BlockSize,
		"repeat":     cfg.Repeat,
	}).Debug("start")

	reports, err := run(cfg, os.Stdout)
	if err != nil {
		logger.WithError(err).WithField("kind", lz4.GetErrorName(err)).Error("smoke test failed")
		os.Exit(1)
	}

	for _, r := range reports {
		entry := logger.WithFields(logrus.Fields{
			"compressor": r.Name,
			"original":   r.OriginalSize,
			"compressed": r.CompressedSize,
			"ratio":      r.Ratio(),
		})
		if !r.Equal {
			entry.Error("round trip mismatch")
			os.Exit(1)
		}
		entry.Info("round trip ok")
	}

	if cfg.Output != "" {
		f := &filer.Lz4JsonFiler{Level: cfg.Level, Options: cfg.Frame.Options()}
		if err := save(f, cfg.Output, reports); err != nil {
			logger.WithError(err).Error("report not saved")
			os.Exit(1)
		}
		logger.WithField("output", cfg.Output).Info("report saved")
	}
}
