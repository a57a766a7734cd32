package main

import (
	"fmt"

	"go.uber.org/zap"

	"smallcat/internal/catfile"
	"smallcat/internal/category"
)

// loadCategory reads, validates and builds the category in path.
func loadCategory(path string) (*catfile.File, *category.Category, error) {
	f, err := catfile.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	res := catfile.Validate(f)
	for _, w := range res.Warnings {
		logger.Warn("category file warning", zap.String("path", path), zap.String("diagnostic", w.String()))
	}

	if err := res.Error(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	c, err := f.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("category loaded",
		zap.String("path", path),
		zap.String("name", f.Name),
		zap.Int("objects", c.ObjectCount()),
		zap.Int("arrows", c.ArrowCount()))

	return f, c, nil
}

func displayName(f *catfile.File, path string) string {
	if f.Name != "" {
		return f.Name
	}

	return path
}
