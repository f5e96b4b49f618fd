// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

// Loading must be safe to call from concurrent workers: each call builds its
// own Viper instance and never mutates package state.
func TestLoad_Concurrent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `
[source]
title = "Concurrent"

[pdf]
outfile = "book.pdf"
`)

	const workers = 16

	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err != nil {
				errCh <- err
				return
			}
			if cfg.Source.Title != "Concurrent" {
				errCh <- fmt.Errorf("unexpected title %q", cfg.Source.Title)
			}
		}()
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Errorf("concurrent load failed: %v", err)
	}
}
