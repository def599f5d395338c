// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/internal/config"
	"github.com/creachadair/jparse/jwcc"
	"github.com/panjf2000/ants/v2"
)

// A checker parses inputs according to a config and reports the results.
type checker struct {
	cfg    *config.Config
	logger *slog.Logger
}

// checkFiles checks each of the named files, using up to the configured
// number of concurrent workers. Reports are returned in the order of paths.
func (c *checker) checkFiles(paths []string) ([]*report, error) {
	pool, err := ants.NewPool(c.cfg.Input.Workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	reports := make([]*report, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			reports[i] = c.checkFile(path)
		})
		if err != nil {
			wg.Done()
			reports[i] = &report{Path: path, Message: err.Error()}
		}
	}
	wg.Wait()
	return reports, nil
}

func (c *checker) checkFile(path string) *report {
	f, err := os.Open(path)
	if err != nil {
		return &report{Path: path, Message: err.Error()}
	}
	defer f.Close()
	return c.checkReader(path, f)
}

// checkReader reads all of r and parses it as a single value.
func (c *checker) checkReader(name string, r io.Reader) *report {
	data, err := io.ReadAll(r)
	if err != nil {
		return &report{Path: name, Message: err.Error()}
	}

	start := time.Now()
	v, err := c.parse(data)
	c.logger.Debug("parsed", "input", name, "bytes", len(data), "elapsed", time.Since(start), "error", err)
	if err != nil {
		return newErrorReport(name, err)
	}
	defer v.Release()

	rep := &report{Path: name, Code: jparse.Ok}
	v.Walk(func(*jparse.Value) bool { rep.Values++; return true })
	return rep
}

func (c *checker) parse(data []byte) (*jparse.Value, error) {
	if c.cfg.Input.JWCC {
		return jwcc.Parse(data, c.cfg.Options())
	}
	return c.cfg.Options().Parse(data)
}

func newErrorReport(name string, err error) *report {
	var serr *jparse.SyntaxError
	if errors.As(err, &serr) {
		return &report{
			Path:     name,
			Code:     serr.Code,
			Offset:   serr.Offset,
			Location: serr.Location,
			Message:  serr.Code.String(),
		}
	}
	return &report{Path: name, Message: err.Error()}
}
